package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ForTheGlory21/Tasker/config"
	"github.com/ForTheGlory21/Tasker/database"
	"github.com/ForTheGlory21/Tasker/middleware"
	"github.com/ForTheGlory21/Tasker/routes"
	"github.com/ForTheGlory21/Tasker/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	taskService := services.NewTaskService(cfg.Workflow)
	commentService := services.NewCommentService()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	routes.RegisterTaskRoutes(api, db, taskService)
	routes.RegisterCommentRoutes(api, db, commentService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
