package pubsub

import (
	"context"
	"testing"

	"danyowa/config"
	"danyowa/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: discardLogger(),
	}
}

func TestNewEventPublisher(t *testing.T) {
	t.Run("unconfigured uses noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishDispatchEvent(context.Background(), newEvent()))
	})

	t.Run("queue push transport rejects noop", func(t *testing.T) {
		params := newParams(t, nil)
		params.Config.Push.Provider = constants.PushProviderQueue

		_, err := NewEventPublisher(params)
		assert.Error(t, err)
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
		assert.Error(t, err)

		_, err = NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}
