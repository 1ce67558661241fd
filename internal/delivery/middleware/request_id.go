// Package middleware holds echo middleware shared by the API and the alert worker.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "raahi/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// headerCloudTrace is set by Google front ends on Cloud Run and Pub/Sub push.
	headerCloudTrace = "X-Cloud-Trace-Context"

	maxRequestIDLength = 128
)

// RequestIDMiddleware tags every request with an id and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's id when it is usable and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := incomingRequestID(c.Request().Header)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func incomingRequestID(header http.Header) string {
	if id := sanitizeRequestID(header.Get(deliverycontext.HeaderXRequestID)); id != "" {
		return id
	}

	// Trace context looks like TRACE_ID/SPAN_ID;o=1
	if trace, _, _ := strings.Cut(header.Get(headerCloudTrace), "/"); trace != "" {
		if id := sanitizeRequestID(trace); id != "" {
			return id
		}
	}

	return uuid.New().String()
}

// sanitizeRequestID drops ids that are too long or carry characters unsafe for logs.
func sanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > maxRequestIDLength {
		return ""
	}

	for _, r := range id {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isAlnum && r != '-' && r != '_' && r != '.' {
			return ""
		}
	}

	return id
}
