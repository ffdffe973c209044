// internal/models/task.go
package models

// TaskStatus enumerates the three board columns.
type TaskStatus int

const (
	StatusPending   TaskStatus = 0
	StatusToday     TaskStatus = 1
	StatusCompleted TaskStatus = 2
)

// Due dates are epoch seconds, clamped to 2020-01-01..2050-12-31.
const (
	DueDateMin int64 = 1577880000
	DueDateMax int64 = 2556100800
)

// Field length bounds shared by the table schema and both validators.
const (
	NameMinLen    = 5
	NameMaxLen    = 50
	SummaryMinLen = 5
	SummaryMaxLen = 200
)

// Task represents the single persisted entity. The id is assigned by the
// store on insert and never changes.
type Task struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Summary string     `json:"summary"`
	DueDate int64      `json:"dueDate"`
	Status  TaskStatus `json:"status"`
}

// TaskInput carries the four writable fields of a create/update request
// after the validation middleware has accepted them.
type TaskInput struct {
	Name    string
	Summary string
	DueDate int64
	Status  TaskStatus
}
