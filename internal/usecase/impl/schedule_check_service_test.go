package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"danyowa/config"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/repository"
	"danyowa/internal/domain/schedule"
	"danyowa/internal/domain/service"
	"danyowa/internal/infra/persistence/memory"
	mockRepo "danyowa/internal/mocks/repository"
	mockSvc "danyowa/internal/mocks/service"
	"danyowa/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Monday 07:45 in Asia/Seoul.
var mondayMorning = time.Date(2026, time.October, 11, 22, 45, 0, 0, time.UTC)

type scheduleCheckFixtures struct {
	service  usecase.ScheduleCheckUsecase
	repo     *mockRepo.MockSubscriptionRepository
	pushSvc  *mockSvc.MockPushService
	snapshot repository.SnapshotProvider
}

func testConfig() *config.Config {
	return &config.Config{
		Cron:     config.CronConfig{Timezone: "Asia/Seoul"},
		Dispatch: config.DispatchConfig{Concurrency: 2, SendTimeout: time.Second},
		Notification: config.NotificationConfig{
			IconURL:  "https://cdn.example.com/icon.png",
			BadgeURL: "https://cdn.example.com/badge.png",
			ClickURL: "/home",
		},
	}
}

func createTestScheduleCheckService(t *testing.T, snapshot repository.SnapshotProvider, at time.Time) scheduleCheckFixtures {
	t.Helper()

	repo := mockRepo.NewMockSubscriptionRepository(t)
	if snapshot == nil {
		snapshot = repo
	}
	pushSvc := mockSvc.NewMockPushService(t)

	svc, err := NewScheduleCheckService(ScheduleCheckParams{
		Logger:   slog.New(slog.DiscardHandler),
		Config:   testConfig(),
		Snapshot: snapshot,
		PushSvc:  pushSvc,
		Clock:    schedule.ClockFunc(func() time.Time { return at }),
	})
	require.NoError(t, err)

	return scheduleCheckFixtures{
		service:  svc,
		repo:     repo,
		pushSvc:  pushSvc,
		snapshot: snapshot,
	}
}

func mondayRecord(userID string) *entity.SubscriptionRecord {
	return &entity.SubscriptionRecord{
		UserID:       userID,
		Subscription: entity.PushSubscription{Endpoint: "https://push.example.com/" + userID},
		Children:     []entity.Child{{ID: "c1", Name: "민준"}},
		Schedules: []entity.ScheduleEntry{
			{
				ID:                  "s1",
				ChildID:             "c1",
				DayOfWeek:           1,
				Title:               "태권도",
				StartTime:           "08:00",
				EndTime:             "09:00",
				NotifyMinutesBefore: 15,
			},
		},
		BriefingSettings: entity.DefaultBriefingSettings(),
	}
}

func TestNewScheduleCheckService_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Cron.Timezone = "Nowhere/Special"

	_, err := NewScheduleCheckService(ScheduleCheckParams{
		Logger:   slog.New(slog.DiscardHandler),
		Config:   cfg,
		Snapshot: mockRepo.NewMockSnapshotProvider(t),
		PushSvc:  mockSvc.NewMockPushService(t),
	})

	assert.Error(t, err)
}

func TestScheduleCheckService_SendsDueNotifications(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx := context.Background()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).Return([]*entity.SubscriptionRecord{mondayRecord("u1")}, nil)
	fx.pushSvc.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(n *entity.OutboundNotification) bool {
			return n.UserID == "u1" &&
				n.Kind == entity.NotificationKindStart &&
				n.Message.Title == "🏃 민준 등원 알림" &&
				n.Message.Icon == "https://cdn.example.com/icon.png" &&
				n.Message.Data.URL == "/home"
		})).
		Return(nil).
		Once()

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, "07:45", summary.Time.HHMM)
	assert.Equal(t, 1, summary.Time.DayOfWeek)
	assert.Equal(t, 1, summary.SubscriptionsChecked)
	assert.Equal(t, 1, summary.Due)
	assert.Equal(t, 1, summary.Sent)
	assert.Zero(t, summary.Failed)
}

func TestScheduleCheckService_NothingDue(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning.Add(time.Minute))
	ctx := context.Background()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).Return([]*entity.SubscriptionRecord{mondayRecord("u1")}, nil)

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Equal(t, "07:46", summary.Time.HHMM)
	assert.Equal(t, 1, summary.SubscriptionsChecked)
	assert.Zero(t, summary.Sent)
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestScheduleCheckService_PartialFailureCountsOnlySuccesses(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx := context.Background()

	records := []*entity.SubscriptionRecord{mondayRecord("u1"), mondayRecord("u2"), mondayRecord("u3")}

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).Return(records, nil)
	fx.pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.OutboundNotification) error {
			if n.UserID == "u2" {
				return errors.New("push service returned 500")
			}

			return nil
		}).
		Times(3)

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.SubscriptionsChecked)
	assert.Equal(t, 3, summary.Due)
	assert.Equal(t, 2, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Empty(t, summary.Expired)
}

func TestScheduleCheckService_PushNotReady(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)

	fx.pushSvc.EXPECT().Ready().Return(service.ErrPushNotConfigured)

	summary, err := fx.service.CheckSchedules(context.Background())
	require.Error(t, err)
	require.NotNil(t, summary)

	assert.ErrorIs(t, err, service.ErrPushNotConfigured)
	assert.Zero(t, summary.Sent)
	assert.Zero(t, summary.SubscriptionsChecked)
	assert.Equal(t, "07:45", summary.Time.HHMM)
	fx.repo.AssertNotCalled(t, "ListSubscriptions", mock.Anything)
}

func TestScheduleCheckService_SnapshotFailure(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx := context.Background()
	snapshotErr := errors.New("redis unavailable")

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).Return(nil, snapshotErr)

	summary, err := fx.service.CheckSchedules(ctx)
	require.Error(t, err)
	require.NotNil(t, summary)

	assert.ErrorIs(t, err, snapshotErr)
	assert.Zero(t, summary.Sent)
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestScheduleCheckService_RemovesExpiredSubscriptions(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx := context.Background()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).
		Return([]*entity.SubscriptionRecord{mondayRecord("u1"), mondayRecord("gone")}, nil)
	fx.pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, n *entity.OutboundNotification) error {
			if n.UserID == "gone" {
				return errors.Wrap(service.ErrSubscriptionGone, "status 410")
			}

			return nil
		}).
		Times(2)
	fx.repo.EXPECT().DeleteSubscriptionIfEndpoint(mock.Anything, "gone", "https://push.example.com/gone").Return(nil).Once()

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []entity.ExpiredSubscription{{UserID: "gone", Endpoint: "https://push.example.com/gone"}}, summary.Expired)
}

func TestScheduleCheckService_ExpiredCleanupKeepsResubscribedRecord(t *testing.T) {
	store := memory.NewSubscriptionStore()
	ctx := context.Background()
	require.NoError(t, store.SaveSubscription(ctx, mondayRecord("u1")))

	fx := createTestScheduleCheckService(t, store, mondayMorning)
	fresh := mondayRecord("u1")
	fresh.Subscription.Endpoint = "https://push.example.com/u1-new"

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, _ *entity.OutboundNotification) error {
			// The user re-subscribes while the old endpoint is being rejected.
			assert.NoError(t, store.SaveSubscription(sendCtx, fresh))

			return errors.Wrap(service.ErrSubscriptionGone, "status 410")
		}).
		Once()

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Expired, 1)

	kept, err := store.FindSubscription(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://push.example.com/u1-new", kept.Subscription.Endpoint)
}

func TestScheduleCheckService_ExpiredCleanupRemovesStaleRecord(t *testing.T) {
	store := memory.NewSubscriptionStore()
	ctx := context.Background()
	require.NoError(t, store.SaveSubscription(ctx, mondayRecord("u1")))

	fx := createTestScheduleCheckService(t, store, mondayMorning)

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return(service.ErrSubscriptionGone).Once()

	_, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	_, err = store.FindSubscription(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}

func TestScheduleCheckService_CleanupFailureIsNotFatal(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx := context.Background()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).Return([]*entity.SubscriptionRecord{mondayRecord("gone")}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return(service.ErrSubscriptionGone).Once()
	fx.repo.EXPECT().
		DeleteSubscriptionIfEndpoint(mock.Anything, "gone", "https://push.example.com/gone").
		Return(errors.New("connection reset")).
		Once()

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Failed)
}

func TestScheduleCheckService_ReadOnlySnapshotKeepsExpired(t *testing.T) {
	snapshot := mockRepo.NewMockSnapshotProvider(t)
	fx := createTestScheduleCheckService(t, snapshot, mondayMorning)
	ctx := context.Background()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	snapshot.EXPECT().ListSubscriptions(ctx).Return([]*entity.SubscriptionRecord{mondayRecord("gone")}, nil)
	fx.pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return(service.ErrSubscriptionGone).Once()

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Len(t, summary.Expired, 1)
	fx.repo.AssertNotCalled(t, "DeleteSubscriptionIfEndpoint", mock.Anything, mock.Anything, mock.Anything)
}

func TestScheduleCheckService_CancelledContextSkipsSends(t *testing.T) {
	fx := createTestScheduleCheckService(t, nil, mondayMorning)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.pushSvc.EXPECT().Ready().Return(nil)
	fx.repo.EXPECT().ListSubscriptions(ctx).
		Return([]*entity.SubscriptionRecord{mondayRecord("u1"), mondayRecord("u2")}, nil)

	summary, err := fx.service.CheckSchedules(ctx)
	require.NoError(t, err)

	assert.Zero(t, summary.Sent)
	assert.Equal(t, 2, summary.Failed)
	fx.pushSvc.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatcher_BoundsConcurrency(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)

	var inFlight, peak atomic.Int64
	pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ *entity.OutboundNotification) error {
			current := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				observed := peak.Load()
				if current <= observed || peak.CompareAndSwap(observed, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)

			return nil
		}).
		Times(10)

	d := newDispatcher(pushSvc, slog.New(slog.DiscardHandler), 3, time.Second)

	notifications := make([]entity.OutboundNotification, 10)
	for idx := range notifications {
		notifications[idx] = entity.OutboundNotification{UserID: "u", Kind: entity.NotificationKindStart}
	}

	result := d.Dispatch(context.Background(), notifications)

	assert.Equal(t, 10, result.Sent)
	assert.Zero(t, result.Failed)
	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestDispatcher_AppliesSendTimeout(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	pushSvc.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.OutboundNotification) error {
			<-ctx.Done()

			return ctx.Err()
		}).
		Once()

	d := newDispatcher(pushSvc, slog.New(slog.DiscardHandler), 1, 10*time.Millisecond)

	result := d.Dispatch(context.Background(), []entity.OutboundNotification{{UserID: "slow"}})

	assert.Zero(t, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.Expired)
}

func TestDispatcher_DefaultsAndDeduplicatesExpired(t *testing.T) {
	pushSvc := mockSvc.NewMockPushService(t)
	pushSvc.EXPECT().Send(mock.Anything, mock.Anything).Return(service.ErrSubscriptionGone).Times(3)

	d := newDispatcher(pushSvc, slog.New(slog.DiscardHandler), 0, 0)
	assert.Equal(t, defaultDispatchConcurrency, d.concurrency)
	assert.Equal(t, defaultSendTimeout, d.sendTimeout)

	endpoint := entity.PushSubscription{Endpoint: "https://push.example.com/u1"}
	result := d.Dispatch(context.Background(), []entity.OutboundNotification{
		{UserID: "u1", Subscription: endpoint, Kind: entity.NotificationKindBriefing},
		{UserID: "u1", Subscription: endpoint, Kind: entity.NotificationKindStart},
		{UserID: ""},
	})

	assert.Equal(t, 3, result.Failed)
	assert.Equal(t, []entity.ExpiredSubscription{{UserID: "u1", Endpoint: "https://push.example.com/u1"}}, result.Expired)
}
