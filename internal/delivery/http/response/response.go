// Package response defines the API response envelope.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the body shape shared by every successful response:
// a human-readable message plus an operation-specific payload.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorBody is the body shape of every failed response.
type ErrorBody struct {
	Message string `json:"message"`
}

// Success writes a successful response with the given status and payload.
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Message: message,
		Data:    data,
	})
}

// Error writes a failed response carrying only the client-facing message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Message: message})
}
