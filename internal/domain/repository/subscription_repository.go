// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"danyowa/internal/domain/entity"
	"danyowa/internal/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when no record exists for a user.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SnapshotProvider supplies the complete set of subscription records for one job pass.
type SnapshotProvider interface {
	// ListSubscriptions returns every stored record. The result is a snapshot; callers may
	// not assume it reflects writes made after the call returns.
	ListSubscriptions(ctx context.Context) ([]*entity.SubscriptionRecord, error)
}

// SubscriptionRepository defines the read/write operations of the subscription store.
// Records are keyed by user id, so Save is an upsert.
type SubscriptionRepository interface {
	SnapshotProvider

	// SaveSubscription creates or replaces the record for record.UserID.
	SaveSubscription(ctx context.Context, record *entity.SubscriptionRecord) error

	// FindSubscription retrieves the record of a user.
	FindSubscription(ctx context.Context, userID string) (*entity.SubscriptionRecord, error)

	// DeleteSubscription removes the record of a user.
	// Returns ErrSubscriptionNotFound when no record exists.
	DeleteSubscription(ctx context.Context, userID string) error

	// DeleteSubscriptionIfEndpoint removes the record of a user only while it still holds endpoint.
	// Returns ErrSubscriptionNotFound when no record exists or the user has re-subscribed
	// with another endpoint in the meantime.
	DeleteSubscriptionIfEndpoint(ctx context.Context, userID, endpoint string) error

	// Close releases any resources held by the store.
	Close() error
}
