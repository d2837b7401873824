package handler

import (
	"log/slog"
	"net/http"

	"danyowa/internal/delivery/api/response"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	"danyowa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves ad-hoc pushes
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendNotificationRequest represents an ad-hoc push request; only the subscription is required
type SendNotificationRequest struct {
	Subscription *PushSubscriptionRequest `json:"subscription" validate:"required"`
	Title        string                   `json:"title"`
	Body         string                   `json:"body"`
	Icon         string                   `json:"icon" validate:"omitempty,url"`
	Data         *entity.NotificationData `json:"data"`
}

// SendNotificationResponse echoes the delivered message
type SendNotificationResponse struct {
	Message      string              `json:"message"`
	Notification *entity.PushMessage `json:"notification"`
}

// SendNotification pushes one message to the given subscription
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "subscription is required")
	}

	message, err := h.notificationUC.SendNotification(c.Request().Context(), &usecase.SendNotificationInput{
		Subscription: req.Subscription.toEntity(),
		Title:        req.Title,
		Body:         req.Body,
		Icon:         req.Icon,
		Data:         req.Data,
	})
	if err != nil {
		ctxPkg.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Failed to send notification",
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SendNotificationResponse{
		Message:      "Notification sent",
		Notification: message,
	})
}
