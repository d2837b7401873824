package service

import (
	"context"

	"danyowa/internal/domain/entity"
)

// DispatchEvent is a queued push delivery handled by the push worker.
type DispatchEvent struct {
	RequestID    string                  `json:"request_id,omitempty"` // For distributed tracing
	EventID      string                  `json:"event_id"`
	UserID       string                  `json:"user_id"`
	Kind         entity.NotificationKind `json:"kind"`
	Subscription entity.PushSubscription `json:"subscription"`
	Message      entity.PushMessage      `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDispatchEvent publishes a push delivery for async processing
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
