package impl

import (
	"context"
	"strings"
	"time"

	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/domain/repository"
	"danyowa/internal/errors"
	"danyowa/internal/usecase"
)

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	now              func() time.Time
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		now:              time.Now,
	}
}

// Subscribe stores the full subscription document, replacing any previous record of the user
func (s *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.SubscriptionRecord, error) {
	if input == nil || strings.TrimSpace(input.UserID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}
	if strings.TrimSpace(input.Subscription.Endpoint) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subscription endpoint is required")
	}

	record := &entity.SubscriptionRecord{
		UserID:           input.UserID,
		Subscription:     input.Subscription,
		Children:         input.Children,
		Schedules:        input.Schedules,
		BriefingSettings: entity.DefaultBriefingSettings(),
		UpdatedAt:        s.now().UTC(),
	}
	if record.Children == nil {
		record.Children = []entity.Child{}
	}
	if record.Schedules == nil {
		record.Schedules = []entity.ScheduleEntry{}
	}
	if input.BriefingSettings != nil {
		record.BriefingSettings = *input.BriefingSettings
		if record.BriefingSettings.Days == nil {
			record.BriefingSettings.Days = []int{}
		}
	}

	if err := s.subscriptionRepo.SaveSubscription(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to save subscription")
	}

	return record, nil
}

// ListSubscriptions returns every stored record
func (s *subscriptionService) ListSubscriptions(ctx context.Context) ([]*entity.SubscriptionRecord, error) {
	records, err := s.subscriptionRepo.ListSubscriptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return records, nil
}

// Unsubscribe removes the record of a user
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound.WrapMessage(userID)
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}
