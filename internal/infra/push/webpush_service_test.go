package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newVAPIDConfig(t *testing.T) config.VAPIDConfig {
	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return config.VAPIDConfig{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Subject:    "mailto:danyowa@example.com",
		TTL:        60,
	}
}

func newNotification(t *testing.T, endpoint string) *entity.OutboundNotification {
	clientKey, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	authSecret := make([]byte, 16)
	_, err = rand.Read(authSecret)
	require.NoError(t, err)

	return &entity.OutboundNotification{
		UserID: "u1",
		Subscription: entity.PushSubscription{
			Endpoint: endpoint,
			Keys: entity.PushSubscriptionKeys{
				P256dh: base64.RawURLEncoding.EncodeToString(clientKey.PublicKey().Bytes()),
				Auth:   base64.RawURLEncoding.EncodeToString(authSecret),
			},
		},
		Kind: entity.NotificationKindBriefing,
		Message: entity.PushMessage{
			Title: "🌅 오늘의 브리핑",
			Body:  "오늘 예정된 일정이 없습니다. 즐거운 하루 되세요!",
			Data:  entity.NotificationData{Type: "briefing", URL: "/"},
		},
	}
}

type receivedPush struct {
	method string
	header http.Header
}

func newPushServer(t *testing.T, status int, body string) (*httptest.Server, *receivedPush) {
	received := &receivedPush{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received.method = r.Method
		received.header = r.Header.Clone()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server, received
}

func TestWebPushService_Delivered(t *testing.T) {
	server, received := newPushServer(t, http.StatusCreated, "")
	svc := NewWebPushService(newVAPIDConfig(t), server.Client(), discardLogger())

	err := svc.Send(context.Background(), newNotification(t, server.URL+"/push/abc"))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, received.method)
	assert.Equal(t, "60", received.header.Get("TTL"))
	assert.Equal(t, "aes128gcm", received.header.Get("Content-Encoding"))
	assert.True(t, strings.HasPrefix(received.header.Get("Authorization"), "vapid "))
}

func TestWebPushService_GoneEndpoints(t *testing.T) {
	for _, status := range []int{http.StatusGone, http.StatusNotFound} {
		server, _ := newPushServer(t, status, "")
		svc := NewWebPushService(newVAPIDConfig(t), server.Client(), discardLogger())

		err := svc.Send(context.Background(), newNotification(t, server.URL))

		assert.ErrorIs(t, err, service.ErrSubscriptionGone)
		assert.False(t, service.IsRetryable(err))
	}
}

func TestWebPushService_StatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, retryable: true},
		{name: "server error", status: http.StatusBadGateway, retryable: true},
		{name: "bad request", status: http.StatusBadRequest, retryable: false},
		{name: "payload too large", status: http.StatusRequestEntityTooLarge, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newPushServer(t, tt.status, "rejected")
			svc := NewWebPushService(newVAPIDConfig(t), server.Client(), discardLogger())

			err := svc.Send(context.Background(), newNotification(t, server.URL))

			statusErr, ok := errors.AsType[*StatusError](err)
			require.True(t, ok)
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, "rejected", statusErr.Body)
			assert.Equal(t, tt.retryable, service.IsRetryable(err))
		})
	}
}

func TestWebPushService_NotConfigured(t *testing.T) {
	svc := NewWebPushService(config.VAPIDConfig{PublicKey: "only-public"}, nil, discardLogger())

	assert.ErrorIs(t, svc.Ready(), service.ErrPushNotConfigured)
	assert.ErrorIs(t, svc.Send(context.Background(), &entity.OutboundNotification{}), service.ErrPushNotConfigured)
	assert.False(t, service.IsRetryable(service.ErrPushNotConfigured))
}

func TestIsRetryable_TransportFailure(t *testing.T) {
	assert.True(t, service.IsRetryable(errors.New("connection reset by peer")))
	assert.False(t, service.IsRetryable(nil))
}
