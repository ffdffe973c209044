package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
	"taskboard/internal/validation"
)

// TaskInputKey is the context key under which ValidateInputs stores the
// parsed request body for the handler.
const TaskInputKey = "taskInput"

// TaskRequestBody documents the JSON shape of a create/update request.
type TaskRequestBody struct {
	Name    string `json:"name" example:"Buy milk"`
	Summary string `json:"summary" example:"Get milk from store"`
	DueDate int64  `json:"dueDate" example:"1700000000"`
	Status  int    `json:"status" example:"0"`
}

// ValidationFailure is the 422 body: the generic message plus every
// individual violation.
type ValidationFailure struct {
	Message string                  `json:"message" example:"Invalid inputs passed."`
	Errors  []validation.FieldError `json:"errors"`
}

// rawValue binds a JSON number, string, bool, or null as its text. The
// numeric fields use it so a non-numeric value reaches the NUMERIC rule
// instead of dying in the bind.
type rawValue string

func (v *rawValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = rawValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = rawValue(data)
	return nil
}

type taskBody struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	DueDate rawValue `json:"dueDate"`
	Status  rawValue `json:"status"`
}

// ValidateInputs guards the create/update routes: every field rule is
// checked and all violations are answered together as a 422.
func ValidateInputs() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body taskBody
		if err := c.ShouldBindJSON(&body); err != nil {
			log.Printf("[task][validate][bind][err] %v", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		errs := validation.ValidateTask(body.Name, body.Summary, string(body.DueDate), string(body.Status))
		if len(errs) > 0 {
			log.Printf("[task][validate][reject] %d invalid field(s)", len(errs))
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Invalid inputs passed.",
				"errors":  errs,
			})
			return
		}

		// Safe after validation: NUMERIC already proved both parse.
		dueDate, _ := strconv.ParseInt(strings.TrimSpace(string(body.DueDate)), 10, 64)
		status, _ := strconv.ParseInt(strings.TrimSpace(string(body.Status)), 10, 64)
		c.Set(TaskInputKey, models.TaskInput{
			Name:    strings.TrimSpace(body.Name),
			Summary: strings.TrimSpace(body.Summary),
			DueDate: dueDate,
			Status:  models.TaskStatus(status),
		})
		c.Next()
	}
}
