package push

import (
	"context"
	"log/slog"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMService delivers notifications through Firebase Cloud Messaging.
// The subscription endpoint carries the FCM registration token.
type FCMService struct {
	client *messaging.Client
	logger *slog.Logger
}

var _ service.PushService = (*FCMService)(nil)

// NewFCMService creates a new Firebase messaging transport.
// Without a credentials path the application default credentials are used.
func NewFCMService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (*FCMService, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the fcm transport")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &FCMService{
		client: client,
		logger: logger,
	}, nil
}

// Ready reports whether the messaging client exists.
func (s *FCMService) Ready() error {
	if s.client == nil {
		return service.ErrPushNotConfigured
	}

	return nil
}

// Send delivers the notification to the registration token in the subscription endpoint.
func (s *FCMService) Send(ctx context.Context, notification *entity.OutboundNotification) error {
	if err := s.Ready(); err != nil {
		return err
	}

	messageID, err := s.client.Send(ctx, buildFCMMessage(notification))
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return errors.Wrap(service.ErrSubscriptionGone, err.Error())
		}

		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "[FCM] Delivered", slog.String("message_id", messageID))

	return nil
}

func buildFCMMessage(notification *entity.OutboundNotification) *messaging.Message {
	msg := notification.Message

	return &messaging.Message{
		Token: notification.Subscription.Endpoint,
		Notification: &messaging.Notification{
			Title:    msg.Title,
			Body:     msg.Body,
			ImageURL: msg.Icon,
		},
		Data: msg.Data.ToMap(),
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: msg.Title,
				Body:  msg.Body,
				Icon:  msg.Icon,
				Badge: msg.Badge,
				Tag:   msg.Data.Type,
			},
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: msg.Data.URL,
			},
		},
	}
}
