package usecase

import (
	"context"

	"danyowa/internal/domain/entity"
)

// SubscribeInput carries a client's full subscription document
type SubscribeInput struct {
	UserID           string
	Subscription     entity.PushSubscription
	Children         []entity.Child
	Schedules        []entity.ScheduleEntry
	BriefingSettings *entity.BriefingSettings // Nil applies the default settings
}

// SubscriptionUsecase defines the interface for subscription management use cases
type SubscriptionUsecase interface {
	// Subscribe creates or replaces the record of input.UserID
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.SubscriptionRecord, error)

	// ListSubscriptions returns every stored record
	ListSubscriptions(ctx context.Context) ([]*entity.SubscriptionRecord, error)

	// Unsubscribe removes the record of a user
	Unsubscribe(ctx context.Context, userID string) error
}
