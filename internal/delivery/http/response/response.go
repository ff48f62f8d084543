// Package response defines the wire shapes shared by handlers and the
// error middleware.
package response

import "github.com/labstack/echo/v4"

// Message is the error body used across the API: {"message": "..."}.
// Detail carries additional context and is populated only in debug mode.
type Message struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

// NotFoundRoute is the body for unmatched routes.
type NotFoundRoute struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Ack acknowledges a write with no payload beyond the outcome.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error writes the standard error body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}
