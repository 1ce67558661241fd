package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"raahi/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalPublisher(endpoint string) *localHTTPPublisher {
	publisher := NewLocalHTTPPublisher(endpoint, slog.New(slog.NewTextHandler(io.Discard, nil))).(*localHTTPPublisher)
	publisher.retryBackoff = time.Millisecond

	return publisher
}

func testAlertEvent() *service.AlertEvent {
	return &service.AlertEvent{
		RequestID:   "req-7",
		AlertID:     "alert-1",
		OwnerUserID: "user-1",
		Latitude:    28.6562,
		Longitude:   77.2410,
		Status:      "active",
		CreatedAt:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	var (
		received PushEnvelope
		header   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := testAlertEvent()
	require.NoError(t, newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(), event))

	assert.Equal(t, "req-7", header)
	assert.Equal(t, "alert-1", received.Message.MessageID)
	assert.Equal(t, "user-1", received.Message.Attributes[service.EventAttrOwnerUserID])
	assert.Equal(t, "req-7", received.RequestID())

	decoded, err := received.AlertEvent()
	require.NoError(t, err)
	assert.Equal(t, *event, *decoded)
}

func TestLocalHTTPPublisher_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(), testAlertEvent()))
	assert.EqualValues(t, 2, calls.Load())
}

func TestLocalHTTPPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(), testAlertEvent())

	assert.ErrorContains(t, err, "503")
	assert.EqualValues(t, localMaxAttempts, calls.Load())
}

func TestLocalHTTPPublisher_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	err := newTestLocalPublisher(server.URL).PublishAlertEvent(context.Background(), testAlertEvent())

	assert.ErrorContains(t, err, "rejected")
	assert.EqualValues(t, 1, calls.Load())
}

func TestPushEnvelope_AlertEventRequiresData(t *testing.T) {
	_, err := (&PushEnvelope{}).AlertEvent()
	assert.Error(t, err)
}
