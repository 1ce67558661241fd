package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"raahi/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/alert-fanout"
	localMaxAttempts  = 3
)

// localHTTPPublisher POSTs push envelopes straight to the alert worker so a
// developer machine behaves like a push subscription, redeliveries included.
type localHTTPPublisher struct {
	endpoint     string
	httpClient   *http.Client
	retryBackoff time.Duration
	logger       *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		retryBackoff: 250 * time.Millisecond,
		logger:       logger,
	}
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := p.logger.With(slog.String("alert_id", event.AlertID), slog.String("endpoint", p.endpoint))

	for attempt := 1; ; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			logger.Debug("Alert event pushed to worker", slog.Int("attempt", attempt))

			return nil
		}
		if !retry || attempt == localMaxAttempts {
			return err
		}

		logger.Warn("Worker push failed, retrying", slog.Int("attempt", attempt), slog.Any("error", err))

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.retryBackoff * time.Duration(attempt)):
		}
	}
}

// push sends one delivery. Like Pub/Sub, only transport failures and 5xx or
// 429 answers are worth redelivering.
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return true, errors.Errorf("worker returned status %d", resp.StatusCode)
	default:
		return false, errors.Errorf("worker rejected event with status %d", resp.StatusCode)
	}
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
