// internal/services/task_service.go
package services

import (
	"context"
	"net/http"
	"strconv"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// User-facing failures keep the exact messages of the HTTP contract.
var (
	errNoTasks       = models.NewErrorResponse("Could not find any tasks in the database.", http.StatusNotFound)
	errNoTasksStatus = models.NewErrorResponse("Could not find any tasks for provided status.", http.StatusNotFound)
	errNoTaskByID    = models.NewErrorResponse("Could not find task with provided ID.", http.StatusNotFound)
	errCreateFailed  = models.NewErrorResponse("Validation passed, but adding task failed.", http.StatusInternalServerError)
	errUpdateFailed  = models.NewErrorResponse("Validation passed, but updating task failed.", http.StatusInternalServerError)
	errDeleteFailed  = models.NewErrorResponse("Validation passed, but deleting task failed.", http.StatusInternalServerError)
)

// TaskService is the business logic behind the /tasks surface. Every failure
// it returns is a *models.ErrorResponse.
type TaskService interface {
	ListAll(ctx context.Context) ([]models.Task, error)
	ListByStatus(ctx context.Context, sid string) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Create(ctx context.Context, input models.TaskInput) (*models.Task, error)
	Update(ctx context.Context, id string, input models.TaskInput) (*models.Task, error)
	Delete(ctx context.Context, id string) (*models.Task, error)
}

type taskService struct {
	repo repositories.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, models.RetrievalError("getAllTasks", err)
	}
	if len(tasks) == 0 {
		return nil, errNoTasks
	}
	return tasks, nil
}

// ListByStatus parses sid itself: a non-numeric status is the same NotFound
// as an empty result, not a distinct failure.
func (s *taskService) ListByStatus(ctx context.Context, sid string) ([]models.Task, error) {
	status, err := strconv.Atoi(sid)
	if err != nil {
		return nil, errNoTasksStatus
	}
	tasks, err := s.repo.FindByStatus(ctx, models.TaskStatus(status))
	if err != nil {
		return nil, models.RetrievalError("getAllTasksByStatus", err)
	}
	if len(tasks) == 0 {
		return nil, errNoTasksStatus
	}
	return tasks, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, models.RetrievalError("getTaskById", err)
	}
	if task == nil {
		return nil, errNoTaskByID
	}
	return task, nil
}

func (s *taskService) Create(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	task, err := s.repo.Store(ctx, input)
	if err != nil {
		// The validator accepted the fields, so a rejected insert is an
		// infrastructure fault, not a user input fault.
		return nil, errCreateFailed
	}
	return task, nil
}

// Update overwrites all four fields unconditionally: full-replacement
// semantics, fields the caller leaves out are wiped. Load and save are two
// separate store calls with no concurrency token (see DESIGN.md).
func (s *taskService) Update(ctx context.Context, id string, input models.TaskInput) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, models.RetrievalError("editTask", err)
	}
	if task == nil {
		return nil, errNoTaskByID
	}

	task.Name = input.Name
	task.Summary = input.Summary
	task.DueDate = input.DueDate
	task.Status = input.Status

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, errUpdateFailed
	}
	return task, nil
}

// Delete answers with the removed task, matching the HTTP contract.
func (s *taskService) Delete(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, models.RetrievalError("deleteTask", err)
	}
	if task == nil {
		return nil, errNoTaskByID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, errDeleteFailed
	}
	return task, nil
}
