package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

// TaskResponse is the success envelope for single-task endpoints.
type TaskResponse struct {
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

// TaskListResponse is the success envelope for list endpoints.
type TaskListResponse struct {
	Message string        `json:"message"`
	Tasks   []models.Task `json:"tasks"`
}

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// respondError answers with the typed {code, message} body; anything that is
// not an *models.ErrorResponse falls through to the generic route 404.
func respondError(c *gin.Context, err error) {
	var appErr *models.ErrorResponse
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, appErr)
		return
	}
	c.JSON(http.StatusNotFound, models.NewErrorResponse("Invalid route.", http.StatusNotFound))
}

// GetAll godoc
// @Summary List all tasks ordered by due date
// @Tags tasks
// @Produce json
// @Success 201 {object} handlers.TaskListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[task][list][ok] count=%d", len(tasks))
	c.JSON(http.StatusCreated, TaskListResponse{
		Message: "All tasks retrieved successfully",
		Tasks:   tasks,
	})
}

// GetByStatus godoc
// @Summary List tasks with the given status, ordered by due date
// @Tags tasks
// @Produce json
// @Param sid path int true "Status (0=Pending, 1=Today, 2=Completed)"
// @Success 201 {object} handlers.TaskListResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/status/{sid} [get]
func (h *TaskHandler) GetByStatus(c *gin.Context) {
	sid := c.Param("sid")
	tasks, err := h.service.ListByStatus(c.Request.Context(), sid)
	if err != nil {
		log.Printf("[task][listByStatus][err] sid=%q: %v", sid, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][listByStatus][ok] sid=%q count=%d", sid, len(tasks))
	c.JSON(http.StatusCreated, TaskListResponse{
		Message: "Tasks retrieved successfully.",
		Tasks:   tasks,
	})
}

// GetByID godoc
// @Summary Retrieve one task by id
// @Tags tasks
// @Produce json
// @Param tid path string true "Task ID"
// @Success 201 {object} handlers.TaskResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /tasks/task/{tid} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	tid := c.Param("tid")
	task, err := h.service.GetByID(c.Request.Context(), tid)
	if err != nil {
		log.Printf("[task][getByID][err] id=%s: %v", tid, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][getByID][ok] id=%s", tid)
	c.JSON(http.StatusCreated, TaskResponse{
		Message: "Task retrieved successfully.",
		Task:    *task,
	})
}

// Create godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body middleware.TaskRequestBody true "Task fields"
// @Success 201 {object} handlers.TaskResponse
// @Failure 422 {object} middleware.ValidationFailure
// @Failure 500 {object} models.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	input := c.MustGet(middleware.TaskInputKey).(models.TaskInput)
	task, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		respondError(c, err)
		return
	}
	log.Printf("[task][create][ok] id=%s name=%q", task.ID, task.Name)
	c.JSON(http.StatusCreated, TaskResponse{
		Message: "New task successfully created.",
		Task:    *task,
	})
}

// Update godoc
// @Summary Replace all four fields of a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param tid path string true "Task ID"
// @Param task body middleware.TaskRequestBody true "Task fields (full replacement)"
// @Success 201 {object} handlers.TaskResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} middleware.ValidationFailure
// @Failure 500 {object} models.ErrorResponse
// @Router /tasks/{tid} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	tid := c.Param("tid")
	input := c.MustGet(middleware.TaskInputKey).(models.TaskInput)
	task, err := h.service.Update(c.Request.Context(), tid, input)
	if err != nil {
		log.Printf("[task][update][err] id=%s: %v", tid, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][update][ok] id=%s", tid)
	c.JSON(http.StatusCreated, TaskResponse{
		Message: "Task edited successfully.",
		Task:    *task,
	})
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param tid path string true "Task ID"
// @Success 201 {object} handlers.TaskResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /tasks/{tid} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	tid := c.Param("tid")
	task, err := h.service.Delete(c.Request.Context(), tid)
	if err != nil {
		log.Printf("[task][delete][err] id=%s: %v", tid, err)
		respondError(c, err)
		return
	}
	log.Printf("[task][delete][ok] id=%s", tid)
	c.JSON(http.StatusCreated, TaskResponse{
		Message: "Task deleted successfully.",
		Task:    *task,
	})
}
