package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/constants"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/repository"
	"danyowa/internal/domain/service"
	"danyowa/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed OIDC token for the given audience
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers queued dispatch events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth   bool
	audience         string
	validateToken    TokenValidator
	logger           *slog.Logger
	pushSvc          service.PushService
	subscriptionRepo repository.SubscriptionRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	PushSvc          service.PushService
	SubscriptionRepo repository.SubscriptionRepository
	TokenValidator   TokenValidator `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	validateToken := params.TokenValidator
	if validateToken == nil {
		validateToken = idtoken.Validate
	}

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		audience:         audience,
		validateToken:    validateToken,
		logger:           params.Logger,
		pushSvc:          params.PushSvc,
		subscriptionRepo: params.SubscriptionRepo,
	}
}

// HandlePush delivers one dispatch event.
// 503 asks Pub/Sub to redeliver; every other outcome is acknowledged with 2xx or 4xx.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pubsub.DecodeEvent(data)
	if err != nil {
		h.logger.Error("[Worker] Failed to parse dispatch event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx = ctxPkg.WithRequestScope(ctx, h.extractRequestID(ctx, &pushMsg, event), h.logger)
	reqLogger := ctxPkg.GetLoggerOrDefault(ctx, h.logger)

	reqLogger.Info("[Worker] Processing dispatch event",
		slog.String("event_id", event.EventID),
		slog.String("user_id", event.UserID),
		slog.String("kind", string(event.Kind)),
	)

	err = h.pushSvc.Send(ctx, &entity.OutboundNotification{
		UserID:       event.UserID,
		Subscription: event.Subscription,
		Kind:         event.Kind,
		ScheduleID:   event.Message.Data.ScheduleID,
		Message:      event.Message,
	})

	switch {
	case err == nil:
		reqLogger.Info("[Worker] Dispatch event delivered", slog.String("event_id", event.EventID))

	case errors.Is(err, service.ErrSubscriptionGone):
		reqLogger.Warn("[Worker] Push subscription gone",
			slog.String("event_id", event.EventID),
			slog.String("user_id", event.UserID),
		)
		h.removeSubscription(ctx, reqLogger, event.UserID, event.Subscription.Endpoint)

	case service.IsRetryable(err):
		reqLogger.Error("[Worker] Delivery failed, requesting redelivery",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)

	default:
		// Redelivery cannot fix it; acknowledge to stop the loop.
		reqLogger.Error("[Worker] Delivery failed permanently",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	return c.NoContent(http.StatusOK)
}

// removeSubscription drops the record only while it still holds the endpoint the event was sent to.
// Events can arrive long after the pass that produced them, when the user may have re-subscribed.
func (h *PushHandler) removeSubscription(ctx context.Context, logger *slog.Logger, userID, endpoint string) {
	if userID == "" {
		return
	}

	err := h.subscriptionRepo.DeleteSubscriptionIfEndpoint(ctx, userID, endpoint)
	switch {
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		logger.Info("[Worker] Expired subscription already replaced or removed", slog.String("user_id", userID))

	case err != nil:
		logger.Warn("[Worker] Failed to remove expired subscription",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

	default:
		logger.Info("[Worker] Removed expired subscription", slog.String("user_id", userID))
	}
}

// extractRequestID prefers message attributes, then the event, then the inbound request
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DispatchEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// Empty lets WithRequestScope generate one.
	return ctxPkg.GetRequestIDFromContext(ctx)
}

// verifyPubSubToken verifies the OIDC token Google Pub/Sub attaches to authenticated push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
