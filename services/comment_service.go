package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ForTheGlory21/Tasker/database"
	"github.com/ForTheGlory21/Tasker/models"
)

type CommentServiceInterface interface {
	AddComment(db *database.Database, taskID int64, text string) (models.Comment, error)
	GetCommentsForTask(db *database.Database, taskID int64) ([]models.Comment, error)
}

type CommentService struct{}

func NewCommentService() *CommentService {
	return &CommentService{}
}

// AddComment appends an immutable comment to an existing task. The task
// existence check and the insert share one transaction.
func (s *CommentService) AddComment(db *database.Database, taskID int64, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Comment{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Comment{}, tx.Error
	}

	var taskCount int64
	if err := tx.Model(&models.Task{}).Where("id = ?", taskID).Count(&taskCount).Error; err != nil {
		tx.Rollback()
		return models.Comment{}, err
	}
	if taskCount == 0 {
		tx.Rollback()
		return models.Comment{}, ErrTaskNotFound
	}

	comment := models.Comment{
		TaskID:    taskID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
	if err := tx.Create(&comment).Error; err != nil {
		tx.Rollback()
		return models.Comment{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Comment{}, err
	}

	return comment, nil
}

// GetCommentsForTask lists comments oldest first. An unknown task yields an
// empty list, not an error; existence is only validated on write.
func (s *CommentService) GetCommentsForTask(db *database.Database, taskID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	result := db.DB.
		Where("task_id = ?", taskID).
		Order("timestamp ASC, id ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
