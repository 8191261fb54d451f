package domain

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Machine-readable error codes carried in the response envelope.
const (
	CodeAuthRequired            = "AUTH_REQUIRED"
	CodeAuthSessionInvalid      = "AUTH_SESSION_INVALID"
	CodeAuthAccountDeactivated  = "AUTH_ACCOUNT_DEACTIVATED"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodePermissionDenied        = "PERMISSION_DENIED"
	CodeValidationError         = "VALIDATION_ERROR"
	CodeNotFound                = "NOT_FOUND"
	CodeInternal                = "INTERNAL_ERROR"
)

// Error is a typed application error. It is constructed where a failure is
// detected and consumed exactly once by the HTTP error handler.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func NewAuthRequired() *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: "Authentication required", Code: CodeAuthRequired}
}

func NewAuthSessionInvalid() *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: "Invalid or expired session", Code: CodeAuthSessionInvalid}
}

func NewAuthAccountDeactivated() *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: "Account is deactivated", Code: CodeAuthAccountDeactivated}
}

func NewInvalidCredentials() *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password", Code: CodeInvalidCredentials}
}

func NewPermissionDenied() *Error {
	return &Error{StatusCode: http.StatusForbidden, Message: "Permission denied", Code: CodePermissionDenied}
}

func NewValidationError(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message, Code: CodeValidationError}
}

func NewNotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: message, Code: CodeNotFound}
}

func NewInternal() *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: "Internal server error", Code: CodeInternal}
}
