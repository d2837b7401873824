// Package persistence selects and wires the subscription store.
package persistence

import (
	"context"
	"log/slog"

	"danyowa/config"
	"danyowa/internal/domain/constants"
	"danyowa/internal/domain/lifecycle"
	"danyowa/internal/domain/repository"
	"danyowa/internal/errors"
	"danyowa/internal/infra/persistence/memory"
	"danyowa/internal/infra/persistence/postgres"
	"danyowa/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// opener is implemented by stores that need a connection check at startup.
type opener interface {
	Open(ctx context.Context) error
}

// Params defines the dependencies for the store provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the store under both contracts.
type Result struct {
	fx.Out

	Repository repository.SubscriptionRepository
	Snapshot   repository.SnapshotProvider
}

// NewSubscriptionRepository builds the store named by store.provider and binds it to the lifecycle.
func NewSubscriptionRepository(params Params) (Result, error) {
	repo, err := newStore(params.Config, params.Logger)
	if err != nil {
		return Result{}, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			target, ok := repo.(opener)
			if !ok {
				return nil
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return target.Open(ctx)
		},
		OnStop: func(_ context.Context) error {
			return repo.Close()
		},
	})

	params.Logger.Info("Subscription store selected", slog.String("provider", params.Config.Store.Provider))

	return Result{Repository: repo, Snapshot: repo}, nil
}

func newStore(cfg *config.Config, logger *slog.Logger) (repository.SubscriptionRepository, error) {
	switch cfg.Store.Provider {
	case constants.StoreProviderMemory, "":
		return memory.NewSubscriptionStore(), nil

	case constants.StoreProviderRedis:
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			return nil, err
		}

		return redis.NewSubscriptionStore(client, cfg.Redis.Key, logger), nil

	case constants.StoreProviderPostgres:
		db, err := postgres.New(cfg, logger)
		if err != nil {
			return nil, err
		}

		return postgres.NewSubscriptionStore(db, logger), nil

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Store.Provider)
	}
}
