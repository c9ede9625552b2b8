// Package http provides the echo transport: request binding, the response
// envelope and the error-to-status mapping.
package http

import (
	"github.com/thtta/farmlend/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform response wrapper. Data and Meta are omitted when
// absent; failures carry only success=false and the message.
type Envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    any              `json:"data,omitempty"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

func respond(ctx echo.Context, status int, message string, data any) error {
	return ctx.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondPage(ctx echo.Context, status int, message string, data any, meta pagination.Meta) error {
	return ctx.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &meta,
	})
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}
