// Package validation holds the field rules for create/update requests as
// pure, storage-agnostic logic. The table schema enforces the same bounds a
// second time; the two layers express one set of rules, not two.
package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"taskboard/internal/models"
)

// RuleType names a single field rule.
type RuleType string

const (
	Required  RuleType = "REQUIRED"
	MinLength RuleType = "MIN_LENGTH"
	MaxLength RuleType = "MAX_LENGTH"
	Numeric   RuleType = "NUMERIC"
	MinValue  RuleType = "MIN_VALUE"
	MaxValue  RuleType = "MAX_VALUE"
)

// Rule is one named check with an optional bound and the message reported
// when the check fails.
type Rule struct {
	Type    RuleType
	Bound   int64
	Message string
}

// FieldError reports one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type fieldChecks struct {
	field string
	rules []Rule
}

// taskChecks runs in declaration order. Within a field the first failing
// rule wins and the rest are skipped; fields are independent of each other.
var taskChecks = []fieldChecks{
	{field: "name", rules: []Rule{
		{Type: Required, Message: "Task name can not be empty."},
		{Type: MinLength, Bound: models.NameMinLen, Message: "Task name must be 5-50 characters."},
		{Type: MaxLength, Bound: models.NameMaxLen, Message: "Task name must be 5-50 characters."},
	}},
	{field: "summary", rules: []Rule{
		{Type: Required, Message: "Task summary can not be empty."},
		{Type: MinLength, Bound: models.SummaryMinLen, Message: "Task summary must be 5-200 characters."},
		{Type: MaxLength, Bound: models.SummaryMaxLen, Message: "Task summary must be 5-200 characters."},
	}},
	{field: "dueDate", rules: []Rule{
		{Type: Required, Message: "Task due date can not be empty."},
		{Type: Numeric, Message: "Task due date must be in epoch integer format."},
		{Type: MinValue, Bound: models.DueDateMin, Message: "Task due date must be between Jan 1, 2020 and Dec 31, 2050."},
		{Type: MaxValue, Bound: models.DueDateMax, Message: "Task due date must be between Jan 1, 2020 and Dec 31, 2050."},
	}},
	{field: "status", rules: []Rule{
		{Type: Required, Message: "Task status can not be empty."},
		{Type: Numeric, Message: "Task status must be in an integer."},
		{Type: MinValue, Bound: 0, Message: "Task status must be 0, 1, or 2"},
		{Type: MaxValue, Bound: 2, Message: "Task status must be 0, 1, or 2"},
	}},
}

// ValidateTask checks the raw field values of a create/update request and
// returns every violation found: one message per failed field, all failed
// fields reported together.
func ValidateTask(name, summary, dueDate, status string) []FieldError {
	values := map[string]string{
		"name":    name,
		"summary": summary,
		"dueDate": dueDate,
		"status":  status,
	}

	var errs []FieldError
	for _, fc := range taskChecks {
		value := values[fc.field]
		for _, rule := range fc.rules {
			if !check(value, rule) {
				errs = append(errs, FieldError{Field: fc.field, Message: rule.Message})
				break
			}
		}
	}
	return errs
}

func check(value string, rule Rule) bool {
	trimmed := strings.TrimSpace(value)
	switch rule.Type {
	case Required:
		return len(trimmed) > 0
	case MinLength:
		return int64(utf8.RuneCountInString(trimmed)) >= rule.Bound
	case MaxLength:
		return int64(utf8.RuneCountInString(trimmed)) <= rule.Bound
	case Numeric:
		_, err := strconv.ParseInt(trimmed, 10, 64)
		return err == nil
	case MinValue:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		return err == nil && n >= rule.Bound
	case MaxValue:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		return err == nil && n <= rule.Bound
	}
	return false
}
