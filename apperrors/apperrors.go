package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a wrapper for error messages carrying standard HTTP response codes
// so the transport layer can map service failures without string matching.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Validation returns an error for malformed input, rejected before any store access.
func Validation(msg string) error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return &Error{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Conflict returns an error for requests rejected after a read, with no mutation.
func Conflict(msg string) error {
	return &Error{Code: http.StatusConflict, Message: msg}
}

// NotFound returns an error for an unknown id or token.
func NotFound(entityName string) error {
	return &Error{Code: http.StatusNotFound, Message: entityName + " not found"}
}

// Unauthorized returns an error for missing or invalid credentials.
func Unauthorized(msg string) error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// Forbidden returns an error for a business id mismatch on an owned resource.
func Forbidden(msg string) error {
	return &Error{Code: http.StatusForbidden, Message: msg}
}

// Downstream wraps a failure from an external collaborator such as the SMS gateway.
func Downstream(err error) error {
	return &Error{Code: http.StatusBadGateway, Message: err.Error()}
}

// Internal wraps an unexpected failure such as a database error.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: http.StatusInternalServerError, Message: err.Error()}
}

// GetCode returns the HTTP code of an error, defaulting to 500.
func GetCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}

// IsConflict reports whether err is a conflict error.
func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}
