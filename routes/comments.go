package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ForTheGlory21/Tasker/database"
	"github.com/ForTheGlory21/Tasker/services"
)

type commentPayload struct {
	Text string `json:"text" binding:"required"`
}

func RegisterCommentRoutes(group *gin.RouterGroup, db *database.Database, commentService services.CommentServiceInterface) {
	group.POST("/tasks/:id/comments", func(c *gin.Context) { AddComment(c, db, commentService) })
	group.GET("/tasks/:id/comments", func(c *gin.Context) { GetCommentsForTask(c, db, commentService) })
}

func AddComment(c *gin.Context, db *database.Database, commentService services.CommentServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var payload commentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	comment, err := commentService.AddComment(db, id, payload.Text)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func GetCommentsForTask(c *gin.Context, db *database.Database, commentService services.CommentServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	comments, err := commentService.GetCommentsForTask(db, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
