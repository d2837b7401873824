package usecase

import (
	"context"

	"danyowa/internal/domain/entity"
)

// SendNotificationInput describes an ad-hoc push message; empty fields take defaults
type SendNotificationInput struct {
	Subscription entity.PushSubscription
	Title        string
	Body         string
	Icon         string
	Data         *entity.NotificationData
}

// NotificationUsecase defines the interface for sending ad-hoc notifications
type NotificationUsecase interface {
	// SendNotification delivers a single push message to the given subscription
	SendNotification(ctx context.Context, input *SendNotificationInput) (*entity.PushMessage, error)
}
