// Package push contains the push transports: VAPID web push, FCM and the Pub/Sub queue.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const maxErrorBodyBytes = 512

// StatusError is a non-2xx answer of the push service other than 404/410.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("push service returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether the push service asked the sender to retry later.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// WebPushService sends VAPID-signed, encrypted web push messages.
type WebPushService struct {
	publicKey  string
	privateKey string
	subscriber string
	ttl        int
	httpClient webpush.HTTPClient
	logger     *slog.Logger
}

var _ service.PushService = (*WebPushService)(nil)

// NewWebPushService creates a web push transport from the VAPID configuration.
// A nil httpClient uses http.DefaultClient.
func NewWebPushService(cfg config.VAPIDConfig, httpClient webpush.HTTPClient, logger *slog.Logger) *WebPushService {
	return &WebPushService{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		// webpush-go adds the mailto: scheme itself
		subscriber: strings.TrimPrefix(cfg.Subject, "mailto:"),
		ttl:        cfg.TTL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Ready reports whether both VAPID keys are configured.
func (s *WebPushService) Ready() error {
	if s.publicKey == "" || s.privateKey == "" {
		return service.ErrPushNotConfigured
	}

	return nil
}

// Send encrypts the message for the subscription and posts it to the subscription endpoint.
func (s *WebPushService) Send(ctx context.Context, notification *entity.OutboundNotification) error {
	if err := s.Ready(); err != nil {
		return err
	}

	payload, err := json.Marshal(notification.Message)
	if err != nil {
		return errors.Wrap(err, "encode push payload")
	}

	sub := notification.Subscription
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.Keys.P256dh,
			Auth:   sub.Keys.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.subscriber,
		TTL:             s.ttl,
		Urgency:         webpush.UrgencyHigh,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
	})
	if err != nil {
		return errors.Wrap(err, "send web push")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return errors.Wrapf(service.ErrSubscriptionGone, "push service returned %d", resp.StatusCode)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		s.logger.DebugContext(ctx, "[WebPush] Delivered",
			slog.String("endpoint", truncateEndpoint(sub.Endpoint)),
			slog.Int("status", resp.StatusCode),
		)

		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}

func truncateEndpoint(endpoint string) string {
	const maxLen = 50
	if len(endpoint) <= maxLen {
		return endpoint
	}

	return endpoint[:maxLen]
}
