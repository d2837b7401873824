package push

import (
	"context"

	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	"github.com/google/uuid"
)

// QueueService hands notifications to the push worker through the event publisher.
// A successful Send means the event was accepted by the queue, not that it reached the device.
type QueueService struct {
	publisher service.EventPublisher
}

var _ service.PushService = (*QueueService)(nil)

// NewQueueService creates a queue transport.
func NewQueueService(publisher service.EventPublisher) *QueueService {
	return &QueueService{publisher: publisher}
}

// Ready reports whether a publisher is available.
func (s *QueueService) Ready() error {
	if s.publisher == nil {
		return service.ErrPushNotConfigured
	}

	return nil
}

// Send publishes one dispatch event per notification.
func (s *QueueService) Send(ctx context.Context, notification *entity.OutboundNotification) error {
	if err := s.Ready(); err != nil {
		return err
	}

	event := &service.DispatchEvent{
		EventID:      uuid.NewString(),
		UserID:       notification.UserID,
		Kind:         notification.Kind,
		Subscription: notification.Subscription,
		Message:      notification.Message,
	}
	event.RequestID = ctxPkg.GetRequestIDFromContext(ctx)

	return errors.Wrap(s.publisher.PublishDispatchEvent(ctx, event), "enqueue dispatch event")
}
