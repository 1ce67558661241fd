// Package handler holds the alert worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"raahi/config"
	deliverycontext "raahi/internal/delivery/context"
	"raahi/internal/domain/constants"
	"raahi/internal/domain/service"
	"raahi/internal/infra/pubsub"
	"raahi/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for the push endpoint audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler fans a stored alert out to operator devices and the live dashboard
type PushHandler struct {
	verifyPushAuth  bool
	validateToken   tokenValidator
	topic           string
	logger          *slog.Logger
	notificationSvc service.NotificationService
	mirror          service.LiveAlertMirror
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	Mirror          service.LiveAlertMirror
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and not on developer machines
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	topic := constants.OperatorsTopic
	if params.Config.Worker != nil && params.Config.Worker.NotificationTopic != "" {
		topic = params.Config.Worker.NotificationTopic
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		validateToken:   idtoken.Validate,
		topic:           topic,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		mirror:          params.Mirror,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Malformed messages are acknowledged so Pub/Sub does not redeliver them forever
	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.AlertEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode alert event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("owner_user_id", event.OwnerUserID),
		slog.Bool("location_degraded", event.LocationDegraded),
	)

	if err := h.processAlert(ctx, event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 makes Pub/Sub redeliver; anything else is acknowledged
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed", slog.String("alert_id", event.AlertID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the inbound request
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.AlertEvent) string {
	if requestID := envelope.RequestID(); requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processAlert pushes to the operator topic and mirrors the alert.
// Both steps are idempotent, so a redelivered event is harmless.
func (h *PushHandler) processAlert(ctx context.Context, event *service.AlertEvent) error {
	if event.AlertID == "" || event.OwnerUserID == "" {
		return errors.New("alert event is missing alert or owner id")
	}

	title, body, data := notificationContent(event)
	if err := h.notificationSvc.SendTopicNotification(ctx, h.topic, title, body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if err := h.mirror.MirrorAlert(ctx, event); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

func notificationContent(event *service.AlertEvent) (title, body string, data map[string]string) {
	name := event.UserName
	if name == "" {
		name = "A tourist"
	}

	title = "Panic alert"
	if event.LocationDegraded {
		body = fmt.Sprintf("%s triggered a panic alert. Location unavailable.", name)
	} else {
		body = fmt.Sprintf("%s triggered a panic alert at %s.", name, util.FormatCoordinate(event.Latitude, event.Longitude))
	}

	data = map[string]string{
		"alert_id":          event.AlertID,
		"owner_user_id":     event.OwnerUserID,
		"status":            event.Status,
		"latitude":          strconv.FormatFloat(event.Latitude, 'f', -1, 64),
		"longitude":         strconv.FormatFloat(event.Longitude, 'f', -1, 64),
		"location_degraded": strconv.FormatBool(event.LocationDegraded),
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
