package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ForTheGlory21/Tasker/database"
	"github.com/ForTheGlory21/Tasker/models"
	"github.com/ForTheGlory21/Tasker/services"
)

// taskPayload is the request body for create and full update. Binding
// failures (missing required fields, malformed dates) never reach the
// service layer.
type taskPayload struct {
	Name        string      `json:"name" binding:"required"`
	Due         models.Date `json:"due" binding:"required"`
	User        string      `json:"user" binding:"required"`
	Status      string      `json:"status"`
	Category    string      `json:"category"`
	Priority    *int        `json:"priority"`
	Description string      `json:"description"`
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (p taskPayload) toInput() services.TaskInput {
	return services.TaskInput{
		Name:        p.Name,
		Due:         p.Due,
		User:        p.User,
		Status:      p.Status,
		Category:    p.Category,
		Priority:    p.Priority,
		Description: p.Description,
	}
}

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, db, taskService) })
	group.POST("/tasks", func(c *gin.Context) { CreateTask(c, db, taskService) })
	group.GET("/tasks/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
	group.PUT("/tasks/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
	group.PUT("/tasks/:id/status", func(c *gin.Context) { UpdateTaskStatus(c, db, taskService) })
	group.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

// taskID parses the :id path parameter. A non-numeric id can never match a
// record, so it maps to 404 like any other unknown id.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return 0, false
	}
	return id, true
}

// renderServiceError maps the service error taxonomy onto HTTP statuses.
func renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	createdTask, err := taskService.CreateTask(db, payload.toInput())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createdTask)
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	filter := services.TaskFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		User:     c.Query("user"),
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	tasks, err := taskService.GetTasks(db, filter)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := taskService.GetTaskById(db, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var payload taskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updatedTask, err := taskService.UpdateTask(db, id, payload.toInput())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

func UpdateTaskStatus(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	updatedTask, err := taskService.UpdateTaskStatus(db, id, payload.Status)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, id); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
