package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Client-side twin of the server's field rules. Mirrored, not shared: the
// server validator fails fast per field while this one AND-accumulates over
// every rule, because the form recomputes validity on each change. Verdicts
// must be kept in sync by hand when either side changes.

type ValidatorType string

const (
	typeRequired  ValidatorType = "REQUIRED"
	typeMinLength ValidatorType = "MIN_LENGTH"
	typeMaxLength ValidatorType = "MAX_LENGTH"
	typeMinValue  ValidatorType = "MIN_VALUE"
	typeMaxValue  ValidatorType = "MAX_VALUE"
)

// Validator is one named rule applied to a field's raw value.
type Validator struct {
	Type  ValidatorType
	Value int64
}

func Required() Validator            { return Validator{Type: typeRequired} }
func MinLength(v int64) Validator    { return Validator{Type: typeMinLength, Value: v} }
func MaxLength(v int64) Validator    { return Validator{Type: typeMaxLength, Value: v} }
func MinValue(v int64) Validator     { return Validator{Type: typeMinValue, Value: v} }
func MaxValue(v int64) Validator     { return Validator{Type: typeMaxValue, Value: v} }

// ValidateInput runs every validator against the value and ANDs the results.
func ValidateInput(value string, validators []Validator) bool {
	isValid := true
	trimmed := strings.TrimSpace(value)
	for _, v := range validators {
		switch v.Type {
		case typeRequired:
			isValid = isValid && len(trimmed) > 0
		case typeMinLength:
			isValid = isValid && int64(utf8.RuneCountInString(trimmed)) >= v.Value
		case typeMaxLength:
			isValid = isValid && int64(utf8.RuneCountInString(trimmed)) <= v.Value
		case typeMinValue:
			n, err := strconv.ParseInt(trimmed, 10, 64)
			isValid = isValid && err == nil && n >= v.Value
		case typeMaxValue:
			n, err := strconv.ParseInt(trimmed, 10, 64)
			isValid = isValid && err == nil && n <= v.Value
		}
	}
	return isValid
}
