// Package pubsub carries stored alerts to the alert worker.
package pubsub

import (
	"context"
	"log/slog"

	"raahi/config"
	"raahi/internal/domain/constants"
	"raahi/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. Without a
// provider alerts are still stored, they just are not fanned out.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" {
		logger.Warn("No Pub/Sub provider configured, alert fan-out disabled")

		return noopPublisher{logger: logger}, nil
	}
	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	var (
		publisher service.EventPublisher
		err       error
	)
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)
	case constants.PubSubProviderGoogle:
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Alert event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p noopPublisher) PublishAlertEvent(_ context.Context, event *service.AlertEvent) error {
	p.logger.Debug("Skipping alert event, no publisher", slog.String("alert_id", event.AlertID))

	return nil
}

func (noopPublisher) Close() error {
	return nil
}
