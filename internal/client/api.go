// Package client is the board's data-access layer: one request helper plus
// the callbacks the UI dispatches through. Construct one Client per session
// and pass it by reference to whichever components need it.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/models"
)

// FormMode selects which mutation a form submission routes to.
type FormMode string

const (
	FormAdd  FormMode = "add-task"
	FormEdit FormMode = "edit-task"
)

// TaskInputBody is the JSON shape of a create/update request.
type TaskInputBody struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	DueDate int64  `json:"dueDate"`
	Status  int    `json:"status"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type taskEnvelope struct {
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

type listEnvelope struct {
	Message string        `json:"message"`
	Tasks   []models.Task `json:"tasks"`
}

// sendRequest funnels every call: issue, decode, and on a failure status
// raise the server-supplied message.
func (c *Client) sendRequest(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr models.ErrorResponse
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
			return &apiErr
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func (c *Client) ListByStatus(status models.TaskStatus) ([]models.Task, error) {
	var env listEnvelope
	if err := c.sendRequest(http.MethodGet, fmt.Sprintf("/tasks/status/%d", status), nil, &env); err != nil {
		return nil, err
	}
	return env.Tasks, nil
}

func (c *Client) GetTask(id string) (*models.Task, error) {
	var env taskEnvelope
	if err := c.sendRequest(http.MethodGet, "/tasks/task/"+id, nil, &env); err != nil {
		return nil, err
	}
	return &env.Task, nil
}

func (c *Client) AddTask(body TaskInputBody) error {
	return c.sendRequest(http.MethodPost, "/tasks/", body, nil)
}

func (c *Client) EditTask(id string, body TaskInputBody) error {
	return c.sendRequest(http.MethodPatch, "/tasks/"+id, body, nil)
}

func (c *Client) DeleteTask(id string) error {
	return c.sendRequest(http.MethodDelete, "/tasks/"+id, nil, nil)
}

// SubmitForm routes a form submission to add or edit based on mode.
func (c *Client) SubmitForm(mode FormMode, taskID string, body TaskInputBody) error {
	if mode == FormAdd {
		return c.AddTask(body)
	}
	return c.EditTask(taskID, body)
}

// MoveTask is the drop half of drag-and-drop: fetch the task, rewrite only
// its status, submit a full update. A failure at either step is the
// caller's to log; nothing is rolled back.
func (c *Client) MoveTask(id string, target models.TaskStatus) error {
	task, err := c.GetTask(id)
	if err != nil {
		return err
	}
	return c.EditTask(id, TaskInputBody{
		Name:    task.Name,
		Summary: task.Summary,
		DueDate: task.DueDate,
		Status:  int(target),
	})
}
