package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"taskboard/internal/models"
)

// TaskRepository is the persistence boundary for task documents.
type TaskRepository interface {
	Store(ctx context.Context, input models.TaskInput) (*models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	FindByStatus(ctx context.Context, status models.TaskStatus) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Store inserts a new task. The id is assigned here, never by the caller.
func (r *taskRepository) Store(ctx context.Context, input models.TaskInput) (*models.Task, error) {
	task := &models.Task{
		ID:      uuid.New().String(),
		Name:    input.Name,
		Summary: input.Summary,
		DueDate: input.DueDate,
		Status:  input.Status,
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, name, summary, due_date, status) VALUES ($1,$2,$3,$4,$5)`,
		task.ID, task.Name, task.Summary, task.DueDate, task.Status,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// FindByID returns (nil, nil) when no row matches; an unparseable id simply
// matches nothing.
func (r *taskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, summary, due_date, status FROM tasks WHERE id = $1`, id,
	).Scan(&task.ID, &task.Name, &task.Summary, &task.DueDate, &task.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT id, name, summary, due_date, status FROM tasks ORDER BY due_date ASC`)
}

func (r *taskRepository) FindByStatus(ctx context.Context, status models.TaskStatus) ([]models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT id, name, summary, due_date, status FROM tasks WHERE status = $1 ORDER BY due_date ASC`,
		status)
}

// Update overwrites all four writable fields of the row.
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET name=$1, summary=$2, due_date=$3, status=$4 WHERE id=$5`,
		task.Name, task.Summary, task.DueDate, task.Status, task.ID,
	)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Summary, &t.DueDate, &t.Status); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
