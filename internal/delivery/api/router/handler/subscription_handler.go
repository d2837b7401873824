package handler

import (
	"log/slog"
	"net/http"

	"danyowa/internal/delivery/api/response"
	"danyowa/internal/delivery/api/validator"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	"danyowa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves the subscription document API
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// PushSubscriptionRequest is the browser PushSubscription JSON
type PushSubscriptionRequest struct {
	Endpoint       string `json:"endpoint" validate:"required"`
	ExpirationTime *int64 `json:"expirationTime"`
	Keys           struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// ChildRequest is one child of the subscription document
type ChildRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// ScheduleEntryRequest is one weekly schedule entry of the subscription document
type ScheduleEntryRequest struct {
	ID                        string `json:"id" validate:"required"`
	ChildID                   string `json:"childId"`
	DayOfWeek                 int    `json:"dayOfWeek" validate:"min=0,max=6"`
	Title                     string `json:"title"`
	StartTime                 string `json:"startTime" validate:"required,hhmm"`
	EndTime                   string `json:"endTime" validate:"required,hhmm"`
	NotifyMinutesBefore       int    `json:"notifyMinutesBefore" validate:"min=0"`
	PickupNotifyMinutesBefore *int   `json:"pickupNotifyMinutesBefore" validate:"omitempty,min=0"`
	Supplies                  string `json:"supplies"`
}

// BriefingSettingsRequest is the daily briefing preference
type BriefingSettingsRequest struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time" validate:"required,hhmm"`
	Days    []int  `json:"days" validate:"dive,min=0,max=6"`
}

// SubscribeRequest represents the full subscription document
type SubscribeRequest struct {
	UserID           string                   `json:"userId" validate:"required"`
	Subscription     *PushSubscriptionRequest `json:"subscription" validate:"required"`
	Children         []ChildRequest           `json:"children" validate:"omitempty,dive"`
	Schedules        []ScheduleEntryRequest   `json:"schedules" validate:"omitempty,dive"`
	BriefingSettings *BriefingSettingsRequest `json:"briefingSettings" validate:"omitempty"`
}

// UnsubscribeRequest identifies the record to remove
type UnsubscribeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// SubscriptionResponse confirms a stored or removed document
type SubscriptionResponse struct {
	Message      string                     `json:"message"`
	Subscription *entity.SubscriptionRecord `json:"subscription,omitempty"`
}

// SubscriptionListResponse wraps the snapshot for operator inspection
type SubscriptionListResponse struct {
	Subscriptions []*entity.SubscriptionRecord `json:"subscriptions"`
}

// Subscribe stores or replaces the document of a user
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "userId and subscription are required", validator.FieldErrors(err))
	}

	record, err := h.subscriptionUC.Subscribe(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctxPkg.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Subscription saved",
		slog.String("user_id", record.UserID),
		slog.Int("schedules", len(record.Schedules)),
	)

	return response.Success(c, http.StatusOK, SubscriptionResponse{
		Message:      "Subscription saved",
		Subscription: record,
	})
}

// ListSubscriptions returns every stored document
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	records, err := h.subscriptionUC.ListSubscriptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if records == nil {
		records = []*entity.SubscriptionRecord{}
	}

	return response.Success(c, http.StatusOK, SubscriptionListResponse{Subscriptions: records})
}

// Unsubscribe removes the document of a user
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "userId is required")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), req.UserID); err != nil {
		return response.HandleAppError(c, err)
	}

	ctxPkg.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Subscription removed",
		slog.String("user_id", req.UserID),
	)

	return response.Success(c, http.StatusOK, SubscriptionResponse{Message: "Subscription removed"})
}

func (r *SubscribeRequest) toInput() *usecase.SubscribeInput {
	input := &usecase.SubscribeInput{
		UserID:       r.UserID,
		Subscription: r.Subscription.toEntity(),
		Children:     make([]entity.Child, 0, len(r.Children)),
		Schedules:    make([]entity.ScheduleEntry, 0, len(r.Schedules)),
	}

	for _, child := range r.Children {
		input.Children = append(input.Children, entity.Child{ID: child.ID, Name: child.Name})
	}

	for _, entry := range r.Schedules {
		input.Schedules = append(input.Schedules, entity.ScheduleEntry{
			ID:                        entry.ID,
			ChildID:                   entry.ChildID,
			DayOfWeek:                 entry.DayOfWeek,
			Title:                     entry.Title,
			StartTime:                 entry.StartTime,
			EndTime:                   entry.EndTime,
			NotifyMinutesBefore:       entry.NotifyMinutesBefore,
			PickupNotifyMinutesBefore: entry.PickupNotifyMinutesBefore,
			Supplies:                  entry.Supplies,
		})
	}

	if r.BriefingSettings != nil {
		input.BriefingSettings = &entity.BriefingSettings{
			Enabled: r.BriefingSettings.Enabled,
			Time:    r.BriefingSettings.Time,
			Days:    r.BriefingSettings.Days,
		}
	}

	return input
}

func (r *PushSubscriptionRequest) toEntity() entity.PushSubscription {
	return entity.PushSubscription{
		Endpoint:       r.Endpoint,
		ExpirationTime: r.ExpirationTime,
		Keys: entity.PushSubscriptionKeys{
			P256dh: r.Keys.P256dh,
			Auth:   r.Keys.Auth,
		},
	}
}
