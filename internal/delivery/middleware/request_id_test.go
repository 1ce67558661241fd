package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "raahi/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, headers map[string]string) (string, string) {
	t.Helper()

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var fromCtx string
	err := m.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.RequestIDFrom(c.Request().Context())
		require.NotNil(t, deliverycontext.LoggerFrom(c.Request().Context(), nil))

		return nil
	})(c)
	require.NoError(t, err)

	return fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID)
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "client id reused", headers: map[string]string{"X-Request-Id": "abc-123"}, want: "abc-123"},
		{name: "cloud trace fallback", headers: map[string]string{"X-Cloud-Trace-Context": "105445aa7843bc8bf206b12000100000/1;o=1"}, want: "105445aa7843bc8bf206b12000100000"},
		{name: "client id wins over trace", headers: map[string]string{"X-Request-Id": "r1", "X-Cloud-Trace-Context": "t1/2"}, want: "r1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromCtx, fromHeader := runRequestID(t, tt.headers)
			assert.Equal(t, tt.want, fromCtx)
			assert.Equal(t, tt.want, fromHeader)
		})
	}
}

func TestRequestIDMiddleware_GeneratesForUnusableIDs(t *testing.T) {
	for _, id := range []string{"", "bad id\nwith newline", strings.Repeat("x", 200)} {
		fromCtx, fromHeader := runRequestID(t, map[string]string{"X-Request-Id": id})
		_, err := uuid.Parse(fromCtx)
		assert.NoError(t, err, "id %q", id)
		assert.Equal(t, fromCtx, fromHeader)
	}
}
