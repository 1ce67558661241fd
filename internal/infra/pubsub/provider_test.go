package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"raahi/config"
	"raahi/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func publisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewEventPublisher_Selection(t *testing.T) {
	publisher, err := NewEventPublisher(publisherParams(t, nil))
	require.NoError(t, err)
	assert.IsType(t, noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(publisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	for name, cfg := range map[string]*config.PubSubConfig{
		"local without endpoint": {Provider: constants.PubSubProviderLocal},
		"google without topic":   {Provider: constants.PubSubProviderGoogle, ProjectID: "raahi"},
		"unknown provider":       {Provider: "kafka"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewEventPublisher(publisherParams(t, cfg))
			assert.Error(t, err)
		})
	}
}
