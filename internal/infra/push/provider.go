package push

import (
	"context"
	"log/slog"

	"danyowa/config"
	"danyowa/internal/domain/constants"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	"go.uber.org/fx"
)

// Params holds dependencies for the push transport, injected by Fx
type Params struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher `optional:"true"`
}

// NewPushService creates the PushService named by push.provider
func NewPushService(params Params) (service.PushService, error) {
	cfg := params.Config
	logger := params.Logger

	switch cfg.Push.Provider {
	case constants.PushProviderWebPush, "":
		svc := NewWebPushService(cfg.VAPID, nil, logger)
		if err := svc.Ready(); err != nil {
			logger.Warn("VAPID keys not configured, web push disabled")
		}

		return svc, nil

	case constants.PushProviderFCM:
		return NewFCMService(params.Ctx, cfg.Firebase, logger)

	case constants.PushProviderQueue:
		if params.Publisher == nil || cfg.PubSub == nil ||
			cfg.PubSub.Provider == "" || cfg.PubSub.Provider == constants.PubSubProviderNoop {
			return nil, errors.New("queue transport requires a pubsub provider")
		}
		logger.Info("Using queue push transport", slog.String("pubsub_provider", cfg.PubSub.Provider))

		return NewQueueService(params.Publisher), nil

	default:
		return nil, errors.Errorf("unknown push provider: %s", cfg.Push.Provider)
	}
}

// NewWorkerPushService creates the transport the push worker delivers queued events with.
// The worker is the last hop, so a queue provider is never valid here.
func NewWorkerPushService(params Params) (service.PushService, error) {
	cfg := params.Config

	var svc service.PushService
	switch cfg.Push.Provider {
	case constants.PushProviderFCM:
		fcm, err := NewFCMService(params.Ctx, cfg.Firebase, params.Logger)
		if err != nil {
			return nil, err
		}
		svc = fcm
	default:
		svc = NewWebPushService(cfg.VAPID, nil, params.Logger)
	}

	if err := svc.Ready(); err != nil {
		return nil, errors.Wrap(err, "push worker transport")
	}

	return svc, nil
}
