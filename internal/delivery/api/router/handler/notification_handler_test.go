package handler

import (
	"net/http"
	"testing"

	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	mockUC "danyowa/internal/mocks/usecase"
	"danyowa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationTestServer(t *testing.T) (*echo.Echo, *mockUC.MockNotificationUsecase) {
	uc := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/send-notification", h.SendNotification)

	return e, uc
}

func TestNotificationHandler_SendNotification(t *testing.T) {
	e, uc := newNotificationTestServer(t)

	uc.EXPECT().
		SendNotification(mock.Anything, mock.MatchedBy(func(in *usecase.SendNotificationInput) bool {
			return in.Subscription.Endpoint == "https://push.example.com/abc" && in.Title == "" && in.Data == nil
		})).
		Return(&entity.PushMessage{Title: "다녀와 알림", Body: "새로운 알림이 있습니다"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/send-notification",
		`{"subscription":{"endpoint":"https://push.example.com/abc","keys":{"p256dh":"p","auth":"a"}}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Notification sent", data["message"])
	assert.Equal(t, "다녀와 알림", data["notification"].(map[string]any)["title"])
}

func TestNotificationHandler_MissingSubscription(t *testing.T) {
	e, _ := newNotificationTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/send-notification", `{"title":"hi"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationHandler_NotConfigured(t *testing.T) {
	e, uc := newNotificationTestServer(t)

	uc.EXPECT().SendNotification(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPushNotConfigured.WrapMessage("push transport not configured"))

	rec := doRequest(e, http.MethodPost, "/api/send-notification", `{"subscription":{"endpoint":"https://push.example.com/abc"}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errInfo := decodeBody(t, rec)["error"].(map[string]any)
	assert.Equal(t, "PUSH_NOT_CONFIGURED", errInfo["code"])
	assert.Equal(t, "VAPID keys not configured", errInfo["message"])
}
