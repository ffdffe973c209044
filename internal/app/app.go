package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/handlers"
	"taskboard/internal/repositories"
	"taskboard/internal/routes"
	"taskboard/internal/services"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "taskboard/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	database, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open task store: ", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("[app][close][err] %v", err)
		}
	}()

	// === Wiring ===
	taskRepo := repositories.NewTaskRepository(database)
	taskService := services.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(router, taskHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[app] listening on %s (driver=%s)", listenAddr, cfg.Database.Driver)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server exited: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
