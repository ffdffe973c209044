package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/db"
	"taskboard/internal/handlers"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
	"taskboard/internal/routes"
	"taskboard/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	svc := services.NewTaskService(repositories.NewTaskRepository(sqlDB))
	return routes.SetupRoutes(gin.New(), handlers.NewTaskHandler(svc))
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func sampleBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Buy milk",
		"summary": "Get milk from store",
		"dueDate": 1700000000,
		"status":  0,
	}
}

func createTask(t *testing.T, router *gin.Engine) models.Task {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/tasks/", sampleBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create failed: %d %s", w.Code, w.Body.String())
	}
	var resp handlers.TaskResponse
	decodeInto(t, w, &resp)
	return resp.Task
}

func TestCreateTask(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/tasks/", sampleBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.TaskResponse
	decodeInto(t, w, &resp)
	if resp.Message != "New task successfully created." {
		t.Fatalf("wrong message: %q", resp.Message)
	}
	if resp.Task.ID == "" {
		t.Fatal("no id assigned")
	}
	if resp.Task.Name != "Buy milk" || resp.Task.Summary != "Get milk from store" ||
		resp.Task.DueDate != 1700000000 || resp.Task.Status != models.StatusPending {
		t.Fatalf("echoed task mismatch: %+v", resp.Task)
	}
}

func TestCreateTaskInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/tasks/", map[string]interface{}{
		"name":    "abc",
		"summary": "hi",
		"dueDate": "whenever",
		"status":  5,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeInto(t, w, &resp)
	if resp.Message != "Invalid inputs passed." {
		t.Fatalf("wrong message: %q", resp.Message)
	}
	if len(resp.Errors) != 4 {
		t.Fatalf("expected an error per field, got %v", resp.Errors)
	}
}

// Non-numeric status must fall through the JSON bind and reach the field
// rules, so the caller sees the integer message instead of a bind failure.
func TestCreateTaskNonNumericStatus(t *testing.T) {
	router := newTestRouter(t)

	body := sampleBody()
	body["status"] = "pending"
	w := doJSON(t, router, http.MethodPost, "/tasks/", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeInto(t, w, &resp)
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "status" ||
		resp.Errors[0].Message != "Task status must be in an integer." {
		t.Fatalf("expected status integer error, got %v", resp.Errors)
	}
}

func TestGetAllEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/tasks/", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Could not find any tasks in the database." {
		t.Fatalf("wrong message: %q", resp.Message)
	}
}

func TestGetAll(t *testing.T) {
	router := newTestRouter(t)
	createTask(t, router)

	w := doJSON(t, router, http.MethodGet, "/tasks/", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.TaskListResponse
	decodeInto(t, w, &resp)
	if resp.Message != "All tasks retrieved successfully" {
		t.Fatalf("wrong message: %q", resp.Message)
	}
	if len(resp.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(resp.Tasks))
	}
}

func TestGetByID(t *testing.T) {
	router := newTestRouter(t)
	created := createTask(t, router)

	w := doJSON(t, router, http.MethodGet, "/tasks/task/"+created.ID, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.TaskResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Task retrieved successfully." || resp.Task.ID != created.ID {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetByIDUnknown(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/tasks/task/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Could not find task with provided ID." {
		t.Fatalf("wrong message: %q", resp.Message)
	}
}

func TestUpdateMovesTaskBetweenColumns(t *testing.T) {
	router := newTestRouter(t)
	created := createTask(t, router)

	body := sampleBody()
	body["status"] = 2
	w := doJSON(t, router, http.MethodPatch, "/tasks/"+created.ID, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.TaskResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Task edited successfully." || resp.Task.Status != models.StatusCompleted {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// Old column is empty now.
	w = doJSON(t, router, http.MethodGet, "/tasks/status/0", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for vacated column, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/tasks/status/2", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var list handlers.TaskListResponse
	decodeInto(t, w, &list)
	if list.Message != "Tasks retrieved successfully." || len(list.Tasks) != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/tasks/no-such-id", sampleBody())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

// Validation runs before existence: an invalid body against a missing id
// still answers 422.
func TestUpdateInvalidBodyUnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/tasks/no-such-id", map[string]interface{}{})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteTask(t *testing.T) {
	router := newTestRouter(t)
	created := createTask(t, router)

	w := doJSON(t, router, http.MethodDelete, "/tasks/"+created.ID, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.TaskResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Task deleted successfully." || resp.Task.ID != created.ID {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/tasks/task/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("task still retrievable after delete: %d", w.Code)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodDelete, "/tasks/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Could not find task with provided ID." {
		t.Fatalf("wrong message: %q", resp.Message)
	}
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp models.ErrorResponse
	decodeInto(t, w, &resp)
	if resp.Message != "Invalid route." || resp.Code != http.StatusNotFound {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
