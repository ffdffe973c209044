package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

func newTestRepo(t *testing.T) TaskRepository {
	t.Helper()
	sqlDB, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return NewTaskRepository(sqlDB)
}

func TestStoreAssignsIDAndRoundTrips(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Store(ctx, models.TaskInput{
		Name:    "Buy milk",
		Summary: "Get milk from store",
		DueDate: 1700000000,
		Status:  models.StatusPending,
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if stored.ID == "" {
		t.Fatal("store did not assign an id")
	}

	found, err := repo.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("stored task not found")
	}
	if found.Name != "Buy milk" || found.Summary != "Get milk from store" ||
		found.DueDate != 1700000000 || found.Status != models.StatusPending {
		t.Fatalf("round trip mismatch: %+v", found)
	}
}

func TestFindByIDMissingReturnsNilNil(t *testing.T) {
	repo := newTestRepo(t)

	task, err := repo.FindByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if task != nil {
		t.Fatalf("expected nil task, got %+v", task)
	}
}

func TestFindAllOrdersByDueDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, due := range []int64{1800000000, 1600000000, 1700000000} {
		if _, err := repo.Store(ctx, models.TaskInput{
			Name:    "Ordered task",
			Summary: "Ordering fixture",
			DueDate: due,
			Status:  models.StatusPending,
		}); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].DueDate > tasks[i].DueDate {
			t.Fatalf("tasks not ordered by due date: %v", tasks)
		}
	}
}

func TestFindByStatusFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	statuses := []models.TaskStatus{models.StatusPending, models.StatusToday, models.StatusPending}
	for _, s := range statuses {
		if _, err := repo.Store(ctx, models.TaskInput{
			Name:    "Filter task",
			Summary: "Filter fixture",
			DueDate: 1700000000,
			Status:  s,
		}); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	pending, err := repo.FindByStatus(ctx, models.StatusPending)
	if err != nil {
		t.Fatalf("find by status: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending tasks, got %d", len(pending))
	}
	for _, task := range pending {
		if task.Status != models.StatusPending {
			t.Fatalf("wrong status in result: %+v", task)
		}
	}

	completed, err := repo.FindByStatus(ctx, models.StatusCompleted)
	if err != nil {
		t.Fatalf("find by status: %v", err)
	}
	if len(completed) != 0 {
		t.Fatalf("expected no completed tasks, got %v", completed)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Store(ctx, models.TaskInput{
		Name:    "Buy milk",
		Summary: "Get milk from store",
		DueDate: 1700000000,
		Status:  models.StatusPending,
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	stored.Name = "Buy bread"
	stored.Summary = "Get bread instead"
	stored.DueDate = 1710000000
	stored.Status = models.StatusCompleted
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name != "Buy bread" || found.Summary != "Get bread instead" ||
		found.DueDate != 1710000000 || found.Status != models.StatusCompleted {
		t.Fatalf("update did not replace fields: %+v", found)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	stored, err := repo.Store(ctx, models.TaskInput{
		Name:    "Buy milk",
		Summary: "Get milk from store",
		DueDate: 1700000000,
		Status:  models.StatusPending,
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	if err := repo.Delete(ctx, stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	found, err := repo.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != nil {
		t.Fatalf("task still present after delete: %+v", found)
	}
}

// The table mirrors the validator's bounds; a write that dodges validation
// is still rejected by the schema.
func TestSchemaRejectsOutOfBoundsRow(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Store(context.Background(), models.TaskInput{
		Name:    "abc",
		Summary: "Get milk from store",
		DueDate: 1700000000,
		Status:  models.StatusPending,
	})
	if err == nil {
		t.Fatal("expected check constraint violation for 3-char name")
	}
}
