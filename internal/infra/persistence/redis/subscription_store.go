// Package redis contains the subscription store backed by a Redis hash.
package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/domain/repository"
	"danyowa/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

var _ repository.SubscriptionRepository = (*SubscriptionStore)(nil)

// SubscriptionStore stores one JSON document per user id in a single Redis hash.
type SubscriptionStore struct {
	client goredis.UniversalClient
	key    string
	logger *slog.Logger
}

// NewClient creates the Redis client from configuration.
func NewClient(cfg *config.RedisConfig) (*goredis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis configuration is required for the redis store")
	}

	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// NewSubscriptionStore is the constructor for SubscriptionStore.
func NewSubscriptionStore(client goredis.UniversalClient, key string, logger *slog.Logger) *SubscriptionStore {
	return &SubscriptionStore{
		client: client,
		key:    key,
		logger: logger,
	}
}

// Open verifies the connection.
func (s *SubscriptionStore) Open(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "failed to ping Redis")
}

// ListSubscriptions returns every stored record ordered by user id.
func (s *SubscriptionStore) ListSubscriptions(ctx context.Context) ([]*entity.SubscriptionRecord, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list subscriptions")
	}

	return decodeSnapshot(values, s.logger), nil
}

// decodeSnapshot decodes every hash field. An undecodable entry is logged and skipped
// so one corrupt document does not hold back every other user's reminders.
func decodeSnapshot(values map[string]string, logger *slog.Logger) []*entity.SubscriptionRecord {
	records := make([]*entity.SubscriptionRecord, 0, len(values))
	for userID, raw := range values {
		record, err := decodeRecord(raw)
		if err != nil {
			logger.Warn("Skipping undecodable subscription",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			continue
		}
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b *entity.SubscriptionRecord) int {
		return strings.Compare(a.UserID, b.UserID)
	})

	return records
}

// SaveSubscription creates or replaces the record of record.UserID.
func (s *SubscriptionStore) SaveSubscription(ctx context.Context, record *entity.SubscriptionRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "encode subscription")
	}

	if err := s.client.HSet(ctx, s.key, record.UserID, raw).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save subscription")
	}

	return nil
}

// FindSubscription retrieves the record of a user.
func (s *SubscriptionStore) FindSubscription(ctx context.Context, userID string) (*entity.SubscriptionRecord, error) {
	raw, err := s.client.HGet(ctx, s.key, userID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user")
	}

	return decodeRecord(raw)
}

// DeleteSubscription removes the record of a user.
func (s *SubscriptionStore) DeleteSubscription(ctx context.Context, userID string) error {
	removed, err := s.client.HDel(ctx, s.key, userID).Result()
	if err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	if removed == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscriptionIfEndpoint removes the record of a user while it still holds endpoint.
// The field is WATCHed so a write between the read and the HDEL aborts the delete.
func (s *SubscriptionStore) DeleteSubscriptionIfEndpoint(ctx context.Context, userID, endpoint string) error {
	err := s.client.Watch(ctx, func(tx *goredis.Tx) error {
		raw, err := tx.HGet(ctx, s.key, userID).Result()
		if errors.Is(err, goredis.Nil) {
			return repository.ErrSubscriptionNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to read subscription")
		}

		match, err := holdsEndpoint(raw, endpoint)
		if err != nil {
			return err
		}
		if !match {
			return repository.ErrSubscriptionNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HDel(ctx, s.key, userID)

			return nil
		})

		return err
	}, s.key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, goredis.TxFailedErr):
		// The hash changed under the watch; the record may now be a fresh subscription.
		return repository.ErrSubscriptionNotFound
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		return err
	default:
		return errors.Wrap(err, "failed to delete expired subscription")
	}
}

// Close closes the Redis client.
func (s *SubscriptionStore) Close() error {
	return errors.Wrap(s.client.Close(), "failed to close Redis")
}

func holdsEndpoint(raw, endpoint string) (bool, error) {
	record, err := decodeRecord(raw)
	if err != nil {
		return false, err
	}

	return record.Subscription.Endpoint == endpoint, nil
}

func decodeRecord(raw string) (*entity.SubscriptionRecord, error) {
	var record entity.SubscriptionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, errors.Wrap(err, "decode subscription")
	}

	return &record, nil
}
