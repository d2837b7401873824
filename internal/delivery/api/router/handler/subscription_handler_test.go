package handler

import (
	"context"
	"net/http"
	"testing"

	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	mockUC "danyowa/internal/mocks/usecase"
	"danyowa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubscriptionTestServer(t *testing.T) (*echo.Echo, *mockUC.MockSubscriptionUsecase) {
	uc := mockUC.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/subscribe", h.Subscribe)
	e.GET("/api/subscribe", h.ListSubscriptions)
	e.DELETE("/api/subscribe", h.Unsubscribe)

	return e, uc
}

const validSubscribeBody = `{
	"userId": "user-1",
	"subscription": {"endpoint": "https://push.example.com/abc", "keys": {"p256dh": "p", "auth": "a"}},
	"children": [{"id": "c1", "name": "민준"}],
	"schedules": [{
		"id": "s1", "childId": "c1", "dayOfWeek": 1, "title": "태권도",
		"startTime": "08:00", "endTime": "09:30", "notifyMinutesBefore": 15,
		"pickupNotifyMinutesBefore": 0, "supplies": "도복"
	}]
}`

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	e, uc := newSubscriptionTestServer(t)

	uc.EXPECT().
		Subscribe(mock.Anything, mock.MatchedBy(func(in *usecase.SubscribeInput) bool {
			if in.UserID != "user-1" || len(in.Schedules) != 1 || in.BriefingSettings != nil {
				return false
			}
			entry := in.Schedules[0]

			return in.Subscription.Keys.Auth == "a" &&
				entry.PickupNotifyMinutesBefore != nil && *entry.PickupNotifyMinutesBefore == 0 &&
				entry.NotifyMinutesBefore == 15
		})).
		RunAndReturn(func(_ context.Context, in *usecase.SubscribeInput) (*entity.SubscriptionRecord, error) {
			return &entity.SubscriptionRecord{UserID: in.UserID, Schedules: in.Schedules}, nil
		})

	rec := doRequest(e, "POST", "/api/subscribe", validSubscribeBody)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Subscription saved", data["message"])
	assert.Contains(t, body, "meta")
}

func TestSubscriptionHandler_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing user id", body: `{"subscription": {"endpoint": "https://push.example.com"}}`},
		{name: "missing subscription", body: `{"userId": "user-1"}`},
		{name: "bad day", body: `{"userId": "u", "subscription": {"endpoint": "e"}, "schedules": [{"id": "s", "dayOfWeek": 7, "startTime": "08:00", "endTime": "09:00"}]}`},
		{name: "bad time", body: `{"userId": "u", "subscription": {"endpoint": "e"}, "schedules": [{"id": "s", "dayOfWeek": 1, "startTime": "8am", "endTime": "09:00"}]}`},
		{name: "unpadded start time", body: `{"userId": "u", "subscription": {"endpoint": "e"}, "schedules": [{"id": "s", "dayOfWeek": 1, "startTime": "8:00", "endTime": "09:00"}]}`},
		{name: "unpadded briefing time", body: `{"userId": "u", "subscription": {"endpoint": "e"}, "briefingSettings": {"enabled": true, "time": "8:00", "days": [1]}}`},
		{name: "bad briefing day", body: `{"userId": "u", "subscription": {"endpoint": "e"}, "briefingSettings": {"enabled": true, "time": "08:00", "days": [9]}}`},
		{name: "malformed json", body: `{"userId":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newSubscriptionTestServer(t)

			rec := doRequest(e, "POST", "/api/subscribe", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSubscriptionHandler_Subscribe_UsecaseError(t *testing.T) {
	e, uc := newSubscriptionTestServer(t)

	uc.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	rec := doRequest(e, "POST", "/api/subscribe", validSubscribeBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body["error"].(map[string]any)["code"])
}

func TestSubscriptionHandler_List(t *testing.T) {
	e, uc := newSubscriptionTestServer(t)

	uc.EXPECT().ListSubscriptions(mock.Anything).Return(nil, nil)

	rec := doRequest(e, "GET", "/api/subscribe", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, []any{}, data["subscriptions"])
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	e, uc := newSubscriptionTestServer(t)

	uc.EXPECT().Unsubscribe(mock.Anything, "user-1").Return(nil)

	rec := doRequest(e, "DELETE", "/api/subscribe", `{"userId":"user-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Subscription removed", data["message"])
}

func TestSubscriptionHandler_Unsubscribe_MissingUserID(t *testing.T) {
	e, _ := newSubscriptionTestServer(t)

	rec := doRequest(e, "DELETE", "/api/subscribe", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscriptionHandler_Unsubscribe_NotFound(t *testing.T) {
	e, uc := newSubscriptionTestServer(t)

	uc.EXPECT().Unsubscribe(mock.Anything, "ghost").Return(domainerrors.ErrSubscriptionNotFound.WrapMessage("ghost"))

	rec := doRequest(e, "DELETE", "/api/subscribe", `{"userId":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", decodeBody(t, rec)["error"].(map[string]any)["code"])
}
