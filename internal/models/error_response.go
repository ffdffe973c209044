package models

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the typed failure that crosses the service/handler
// boundary. Code is the HTTP status the handler answers with, and the body
// serializes as {code, message}.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func NewErrorResponse(message string, code int) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// RetrievalError wraps an unexpected store failure with the operation that
// hit it, so nothing gets swallowed on the way out.
func RetrievalError(operation string, err error) *ErrorResponse {
	return &ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("%s Error: %v.", operation, err),
	}
}
