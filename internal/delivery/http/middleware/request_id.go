package middleware

import (
	"log/slog"

	deliverycontext "bistro/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request a unique ID and a
// request-scoped logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process extracts the client-provided request ID or generates one, echoes
// it in the response header, and stores a scoped logger on the request
// context for the application layers.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("request_id", requestID))
		ctx := deliverycontext.WithLogger(
			deliverycontext.WithRequestID(c.Request().Context(), requestID),
			scoped,
		)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
