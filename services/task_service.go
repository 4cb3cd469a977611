package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ForTheGlory21/Tasker/config"
	"github.com/ForTheGlory21/Tasker/database"
	"github.com/ForTheGlory21/Tasker/models"

	"gorm.io/gorm"
)

// TaskInput carries the mutable fields of a task for create and full
// update. A nil Priority means "use the configured default".
type TaskInput struct {
	Name        string
	Due         models.Date
	User        string
	Status      string
	Category    string
	Priority    *int
	Description string
}

// TaskFilter narrows GetTasks. Zero values leave their dimension
// unrestricted; supplied filters are combined as a conjunction.
type TaskFilter struct {
	Search   string
	Category string
	Status   string
	User     string
	Offset   int
	Limit    int
}

type TaskServiceInterface interface {
	CreateTask(db *database.Database, input TaskInput) (models.Task, error)
	GetTasks(db *database.Database, filter TaskFilter) ([]models.Task, error)
	GetTaskById(db *database.Database, id int64) (models.Task, error)
	UpdateTask(db *database.Database, id int64, input TaskInput) (models.Task, error)
	UpdateTaskStatus(db *database.Database, id int64, status string) (models.Task, error)
	DeleteTask(db *database.Database, id int64) error
}

type TaskService struct {
	workflow config.Workflow
}

func NewTaskService(workflow config.Workflow) *TaskService {
	return &TaskService{workflow: workflow}
}

// validateInput checks required fields and workflow membership, filling in
// the configured defaults for omitted status and priority. It runs before
// any persistence access.
func (s *TaskService) validateInput(input *TaskInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.Due.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrValidation)
	}
	if strings.TrimSpace(input.User) == "" {
		return fmt.Errorf("%w: user is required", ErrValidation)
	}
	if !s.workflow.ValidUser(input.User) {
		return fmt.Errorf("%w: unknown user %q", ErrValidation, input.User)
	}
	if input.Status == "" {
		input.Status = s.workflow.DefaultStatus()
	} else if !s.workflow.ValidStatus(input.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, input.Status)
	}
	if input.Category != "" && !s.workflow.ValidCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, input.Category)
	}
	if input.Priority == nil {
		defaultPriority := s.workflow.PriorityDefault
		input.Priority = &defaultPriority
	} else if !s.workflow.ValidPriority(*input.Priority) {
		return fmt.Errorf("%w: priority must be between %d and %d",
			ErrValidation, s.workflow.PriorityMin, s.workflow.PriorityMax)
	}
	return nil
}

func (s *TaskService) CreateTask(db *database.Database, input TaskInput) (models.Task, error) {
	if err := s.validateInput(&input); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Name:        input.Name,
		Due:         input.Due,
		User:        input.User,
		Status:      input.Status,
		Category:    input.Category,
		Priority:    *input.Priority,
		Description: input.Description,
		Comments:    []models.Comment{},
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	if err := tx.Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) GetTasks(db *database.Database, filter TaskFilter) ([]models.Task, error) {
	tasks := []models.Task{}
	query := db.DB.Model(&models.Task{})

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.User != "" {
		// Map condition so the column gets quoted; "user" is reserved in
		// postgres deployments.
		query = query.Where(map[string]interface{}{"user": filter.User})
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	result := query.
		Order("due ASC, id ASC").
		Preload("Comments", orderComments).
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range tasks {
		if tasks[i].Comments == nil {
			tasks[i].Comments = []models.Comment{}
		}
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id int64) (models.Task, error) {
	var task models.Task
	err := db.DB.Preload("Comments", orderComments).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	if task.Comments == nil {
		task.Comments = []models.Comment{}
	}
	return task, nil
}

// UpdateTask replaces every mutable field of an existing task. Use
// UpdateTaskStatus for the narrow status-only path.
func (s *TaskService) UpdateTask(db *database.Database, id int64, input TaskInput) (models.Task, error) {
	if err := s.validateInput(&input); err != nil {
		return models.Task{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.Preload("Comments", orderComments).First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	// Map update so zero values (cleared category, priority 0) are written.
	updates := map[string]interface{}{
		"name":        input.Name,
		"due":         input.Due,
		"user":        input.User,
		"status":      input.Status,
		"category":    input.Category,
		"priority":    *input.Priority,
		"description": input.Description,
	}
	if err := tx.Model(&task).Updates(updates).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	task.Name = input.Name
	task.Due = input.Due
	task.User = input.User
	task.Status = input.Status
	task.Category = input.Category
	task.Priority = *input.Priority
	task.Description = input.Description
	if task.Comments == nil {
		task.Comments = []models.Comment{}
	}
	return task, nil
}

// UpdateTaskStatus sets only the status field. It exists apart from
// UpdateTask because status flips are the highest-churn mutation and must
// not require resending the full record.
func (s *TaskService) UpdateTaskStatus(db *database.Database, id int64, status string) (models.Task, error) {
	if !s.workflow.ValidStatus(status) {
		return models.Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.Preload("Comments", orderComments).First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if err := tx.Model(&task).Update("status", status).Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	task.Status = status
	if task.Comments == nil {
		task.Comments = []models.Comment{}
	}
	return task, nil
}

// DeleteTask removes a task and its comments in one transaction, so no
// orphaned comment rows are left behind.
func (s *TaskService) DeleteTask(db *database.Database, id int64) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

func orderComments(tx *gorm.DB) *gorm.DB {
	return tx.Order("timestamp ASC, id ASC")
}
