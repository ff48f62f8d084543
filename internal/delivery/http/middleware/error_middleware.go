package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"bistro/config"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto the API's error
// bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Domain errors carry their own status code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Message{Message: appErr.Message()})

		return
	}

	// Echo's own errors: an unmatched route surfaces here as a 404.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			_ = c.JSON(http.StatusNotFound, response.NotFoundRoute{
				Message: "Route not found",
				Path:    c.Request().URL.Path,
			})

			return
		}

		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}
		_ = c.JSON(httpErr.Code, response.Message{Message: message})

		return
	}

	// Anything else is an internal error. The detail (including a stack
	// trace when pkg/errors captured one) is exposed only in debug mode.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	body := response.Message{Message: "Internal server error"}
	if m.debug {
		body.Detail = errorDetail(err)
	}
	_ = c.JSON(http.StatusInternalServerError, body)
}

// errorDetail renders the error with its stack trace when available.
func errorDetail(err error) string {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%+v", err)
	}

	return err.Error()
}
