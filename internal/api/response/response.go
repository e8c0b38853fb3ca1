// Package response defines the uniform JSON envelope used by every endpoint:
// {success, data? | error?, code?}. Error codes are stable strings clients
// switch on; messages are human-readable and may change.
package response

import "github.com/labstack/echo/v4"

// Stable error codes.
const (
	CodeAuthRequired      = "AUTH_REQUIRED"
	CodeInsufficientPerms = "INSUFFICIENT_PERMISSIONS"
	CodeValidationError   = "VALIDATION_ERROR"
	CodeUserExists        = "USER_EXISTS"
	CodeInvalidCreds      = "INVALID_CREDENTIALS"
	CodeAccountDisabled   = "ACCOUNT_DISABLED"
	CodeRateLimited       = "RATE_LIMIT_EXCEEDED"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Envelope is the canonical response shape.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// OK renders a 200 success envelope.
func OK(c echo.Context, data any) error {
	return c.JSON(200, Envelope{Success: true, Data: data})
}

// OKMessage renders a 200 success envelope with a message and optional data.
func OKMessage(c echo.Context, message string, data any) error {
	return c.JSON(200, Envelope{Success: true, Message: message, Data: data})
}

// Created renders a 201 success envelope.
func Created(c echo.Context, message string, data any) error {
	return c.JSON(201, Envelope{Success: true, Message: message, Data: data})
}

// Fail renders an error envelope with the given HTTP status and stable code.
func Fail(c echo.Context, status int, message, code string) error {
	return c.JSON(status, Envelope{Success: false, Error: message, Code: code})
}

// FailDetails is Fail with a structured details payload (validation fields,
// role requirements).
func FailDetails(c echo.Context, status int, message, code string, details any) error {
	return c.JSON(status, Envelope{Success: false, Error: message, Code: code, Details: details})
}
