package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"raahi/config"
	"raahi/internal/domain/service"
	"raahi/internal/infra/pubsub"
	mocks "raahi/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mocks.MockNotificationService, *mocks.MockLiveAlertMirror) {
	t.Helper()

	notifier := mocks.NewMockNotificationService(t)
	mirror := mocks.NewMockLiveAlertMirror(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	h := NewPushHandler(PushHandlerParams{
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notifier,
		Mirror:          mirror,
	})

	return h, notifier, mirror
}

func pushBody(t *testing.T, event *service.AlertEvent, attributes map[string]string) string {
	t.Helper()

	envelope, err := pubsub.NewPushEnvelope(event, "projects/local/subscriptions/alert-fanout", time.Now())
	require.NoError(t, err)
	envelope.Message.Attributes = attributes

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testEvent() *service.AlertEvent {
	return &service.AlertEvent{
		RequestID:   "req-from-event",
		AlertID:     "a1",
		OwnerUserID: "u1",
		UserName:    "Asha",
		Latitude:    28.6562,
		Longitude:   77.241,
		Status:      "active",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestPushHandler_FansOutAlert(t *testing.T) {
	h, notifier, mirror := newTestPushHandler(t)

	notifier.EXPECT().
		SendTopicNotification(mock.Anything, "operators", "Panic alert", mock.Anything, mock.Anything).
		Run(func(_ context.Context, _, _, body string, data map[string]string) {
			assert.Contains(t, body, "Asha")
			assert.Equal(t, "a1", data["alert_id"])
			assert.Equal(t, "false", data["location_degraded"])
		}).
		Return(nil).Once()
	mirror.EXPECT().
		MirrorAlert(mock.Anything, mock.MatchedBy(func(e *service.AlertEvent) bool { return e.AlertID == "a1" })).
		Return(nil).Once()

	rec := doPush(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-attr"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DegradedLocationBody(t *testing.T) {
	_, body, data := notificationContent(&service.AlertEvent{AlertID: "a2", LocationDegraded: true})

	assert.Contains(t, body, "Location unavailable")
	assert.Contains(t, body, "A tourist")
	assert.Equal(t, "true", data["location_degraded"])
}

func TestPushHandler_RetryableFailures(t *testing.T) {
	t.Run("push fails", func(t *testing.T) {
		h, notifier, _ := newTestPushHandler(t)
		notifier.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("fcm unavailable")).Once()

		rec := doPush(h, pushBody(t, testEvent(), nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("mirror fails", func(t *testing.T) {
		h, notifier, mirror := newTestPushHandler(t)
		notifier.EXPECT().SendTopicNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()
		mirror.EXPECT().MirrorAlert(mock.Anything, mock.Anything).Return(errors.New("rtdb down")).Once()

		rec := doPush(h, pushBody(t, testEvent(), nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestPushHandler_AcknowledgesBadMessages(t *testing.T) {
	h, _, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, doPush(h, `{"message":{"data":"%%%not-base64"}}`).Code)
	assert.Equal(t, http.StatusBadRequest, doPush(h, `not json`).Code)

	// A well-formed message without ids is acknowledged without fan-out
	rec := doPush(h, pushBody(t, &service.AlertEvent{Status: "active"}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _, _ := newTestPushHandler(t)
	event := testEvent()

	var envelope pubsub.PushEnvelope
	envelope.Message.Attributes = map[string]string{service.EventAttrRequestID: "req-attr"}
	assert.Equal(t, "req-attr", h.extractRequestID(context.Background(), &envelope, event))

	assert.Equal(t, "req-from-event", h.extractRequestID(context.Background(), &pubsub.PushEnvelope{}, event))

	generated := h.extractRequestID(context.Background(), &pubsub.PushEnvelope{}, &service.AlertEvent{})
	assert.Len(t, generated, 36)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	h, _, _ := newTestPushHandler(t)
	h.verifyPushAuth = true

	// No header at all
	assert.Equal(t, http.StatusUnauthorized, doPush(h, pushBody(t, testEvent(), nil)).Code)

	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "good-token", token)
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://evil.example", Claims: map[string]any{}}, nil
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(pushBody(t, testEvent(), nil)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
