package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/models"
)

// SetupRoutes mounts the task surface. Create and update pass through the
// validation middleware first; reads and deletes go straight to the handler.
func SetupRoutes(r *gin.Engine, taskHandler *handlers.TaskHandler) *gin.Engine {
	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.GetAll)
		tasks.POST("/", middleware.ValidateInputs(), taskHandler.Create)
		tasks.GET("/status/:sid", taskHandler.GetByStatus)
		tasks.GET("/task/:tid", taskHandler.GetByID)
		tasks.PATCH("/:tid", middleware.ValidateInputs(), taskHandler.Update)
		tasks.DELETE("/:tid", taskHandler.Delete)
	}

	// Unmatched routes share one generic 404.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("Invalid route.", http.StatusNotFound))
	})

	return r
}
