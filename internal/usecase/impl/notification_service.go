package impl

import (
	"context"
	"strings"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/domain/schedule"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"
	"danyowa/internal/usecase"
)

const (
	defaultNotificationTitle = "다녀와 알림"
	defaultNotificationBody  = "새로운 알림이 있습니다"
)

type notificationService struct {
	pushSvc  service.PushService
	iconURL  string
	badgeURL string
	clickURL string
}

// NewNotificationService creates a new ad-hoc notification service instance
func NewNotificationService(pushSvc service.PushService, cfg *config.Config) usecase.NotificationUsecase {
	svc := &notificationService{
		pushSvc:  pushSvc,
		iconURL:  cfg.Notification.IconURL,
		badgeURL: cfg.Notification.BadgeURL,
		clickURL: cfg.Notification.ClickURL,
	}
	if svc.iconURL == "" {
		svc.iconURL = schedule.DefaultIconURL
	}
	if svc.clickURL == "" {
		svc.clickURL = schedule.DefaultClickURL
	}

	return svc
}

// SendNotification delivers one message, filling every empty field with its default
func (s *notificationService) SendNotification(ctx context.Context, input *usecase.SendNotificationInput) (*entity.PushMessage, error) {
	if input == nil || strings.TrimSpace(input.Subscription.Endpoint) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("subscription is required")
	}

	if err := s.pushSvc.Ready(); err != nil {
		if errors.Is(err, service.ErrPushNotConfigured) {
			return nil, domainerrors.ErrPushNotConfigured.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrPushDeliveryFailed.WrapMessage(err.Error())
	}

	message := s.buildMessage(input)
	notification := &entity.OutboundNotification{
		Subscription: input.Subscription,
		Message:      message,
	}

	if err := s.pushSvc.Send(ctx, notification); err != nil {
		return nil, domainerrors.ErrPushDeliveryFailed.WrapMessage(err.Error())
	}

	return &message, nil
}

func (s *notificationService) buildMessage(input *usecase.SendNotificationInput) entity.PushMessage {
	message := entity.PushMessage{
		Title: input.Title,
		Body:  input.Body,
		Icon:  input.Icon,
		Badge: s.badgeURL,
		Data:  entity.NotificationData{URL: s.clickURL},
	}
	if message.Title == "" {
		message.Title = defaultNotificationTitle
	}
	if message.Body == "" {
		message.Body = defaultNotificationBody
	}
	if message.Icon == "" {
		message.Icon = s.iconURL
	}
	if input.Data != nil {
		message.Data = *input.Data
		if message.Data.URL == "" {
			message.Data.URL = s.clickURL
		}
	}

	return message
}
