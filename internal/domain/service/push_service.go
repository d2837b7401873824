package service

import (
	"context"

	"danyowa/internal/domain/entity"
	"danyowa/internal/errors"
)

var (
	// ErrPushNotConfigured is returned when the transport lacks its signing or client configuration.
	ErrPushNotConfigured = errors.New("push transport not configured")
	// ErrSubscriptionGone is returned when the push service reports the endpoint no longer exists.
	ErrSubscriptionGone = errors.New("push subscription expired or unsubscribed")
)

// PushService defines the interface for delivering a single push message to a subscription.
type PushService interface {
	// Send delivers notification.Message to notification.Subscription.
	// Implementations must honour ctx cancellation.
	Send(ctx context.Context, notification *entity.OutboundNotification) error

	// Ready reports ErrPushNotConfigured when the transport cannot send at all.
	Ready() error
}

// temporary is implemented by transport errors that know whether a retry may help.
type temporary interface {
	error
	Temporary() bool
}

// IsRetryable reports whether a failed delivery may succeed when attempted again.
// Gone and unconfigured subscriptions never are; transport errors without a verdict are.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, ErrSubscriptionGone) || errors.Is(err, ErrPushNotConfigured) {
		return false
	}

	if tempErr, ok := errors.AsType[temporary](err); ok {
		return tempErr.Temporary()
	}

	return true
}
