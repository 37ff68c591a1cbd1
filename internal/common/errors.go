package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a failure for transport mapping.
type Code string

const (
	CodeValidation      Code = "VALIDATION"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeConflict        Code = "CONFLICT"
	CodeWindowExpired   Code = "WINDOW_EXPIRED"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

// AppError carries a stable machine-readable reason alongside the class code,
// so clients can branch on "not_recipient" without parsing messages.
type AppError struct {
	Code    Code   `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Constructors
func New(code Code, reason, message string) error {
	return &AppError{Code: code, Reason: reason, Message: message}
}

func Wrap(code Code, reason, message string, cause error) error {
	return &AppError{Code: code, Reason: reason, Message: message, Cause: cause}
}

func Validation(reason, msg string) error {
	return New(CodeValidation, reason, msg)
}

func Forbidden(reason, msg string) error {
	return New(CodeForbidden, reason, msg)
}

func Conflict(reason, msg string) error {
	return New(CodeConflict, reason, msg)
}

func WindowExpired(reason, msg string) error {
	return New(CodeWindowExpired, reason, msg)
}

func NotFound(reason, msg string) error {
	return New(CodeNotFound, reason, msg)
}

func Unauthorized(reason, msg string) error {
	return New(CodeUnauthenticated, reason, msg)
}

func Internal(msg string, cause error) error {
	return Wrap(CodeInternal, "internal", msg, cause)
}

// CodeOf extracts the class code, defaulting to CodeInternal for plain errors.
func CodeOf(err error) Code {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code
	}
	return CodeInternal
}

// ReasonOf extracts the stable reason string, empty for plain errors.
func ReasonOf(err error) string {
	var app *AppError
	if errors.As(err, &app) {
		return app.Reason
	}
	return ""
}

// HTTPStatus maps an error class to a response status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeWindowExpired:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
