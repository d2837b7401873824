package impl

import (
	"context"
	"testing"
	"time"

	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/domain/repository"
	mockRepo "danyowa/internal/mocks/repository"
	"danyowa/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service usecase.SubscriptionUsecase
	repo    *mockRepo.MockSubscriptionRepository
}

var fixedNow = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.FixedZone("KST", 9*60*60))

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	repo := mockRepo.NewMockSubscriptionRepository(t)
	svc := &subscriptionService{
		subscriptionRepo: repo,
		now:              func() time.Time { return fixedNow },
	}

	return subscriptionServiceFixtures{
		service: svc,
		repo:    repo,
	}
}

func TestSubscriptionService_Subscribe_AppliesDefaults(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	input := &usecase.SubscribeInput{
		UserID:       "user-1",
		Subscription: entity.PushSubscription{Endpoint: "https://push.example.com/abc"},
	}

	fx.repo.EXPECT().
		SaveSubscription(ctx, mock.AnythingOfType("*entity.SubscriptionRecord")).
		Return(nil)

	record, err := fx.service.Subscribe(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, entity.DefaultBriefingSettings(), record.BriefingSettings)
	assert.NotNil(t, record.Children)
	assert.NotNil(t, record.Schedules)
	assert.Empty(t, record.Schedules)
	assert.Equal(t, fixedNow.UTC(), record.UpdatedAt)
}

func TestSubscriptionService_Subscribe_KeepsProvidedSettings(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	briefing := &entity.BriefingSettings{Enabled: true, Time: "07:30", Days: []int{0, 6}}
	input := &usecase.SubscribeInput{
		UserID:           "user-1",
		Subscription:     entity.PushSubscription{Endpoint: "https://push.example.com/abc"},
		Children:         []entity.Child{{ID: "c1", Name: "민준"}},
		Schedules:        []entity.ScheduleEntry{{ID: "s1", ChildID: "c1", DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00"}},
		BriefingSettings: briefing,
	}

	var saved *entity.SubscriptionRecord
	fx.repo.EXPECT().
		SaveSubscription(ctx, mock.Anything).
		Run(func(_ context.Context, record *entity.SubscriptionRecord) { saved = record }).
		Return(nil)

	record, err := fx.service.Subscribe(ctx, input)
	require.NoError(t, err)

	assert.Same(t, saved, record)
	assert.Equal(t, *briefing, record.BriefingSettings)
	assert.Len(t, record.Schedules, 1)
	assert.Len(t, record.Children, 1)
}

func TestSubscriptionService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SubscribeInput
	}{
		{name: "nil input", input: nil},
		{name: "missing user id", input: &usecase.SubscribeInput{Subscription: entity.PushSubscription{Endpoint: "https://push.example.com"}}},
		{name: "missing endpoint", input: &usecase.SubscribeInput{UserID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			_, err := fx.service.Subscribe(context.Background(), tt.input)
			require.Error(t, err)

			appErr, ok := err.(domainerrors.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestSubscriptionService_Subscribe_RepositoryError(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	dbErr := errors.New("disk full")

	fx.repo.EXPECT().SaveSubscription(ctx, mock.Anything).Return(dbErr)

	_, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{
		UserID:       "user-1",
		Subscription: entity.PushSubscription{Endpoint: "https://push.example.com/abc"},
	})

	assert.ErrorIs(t, err, dbErr)
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	records := []*entity.SubscriptionRecord{{UserID: "a"}, {UserID: "b"}}
	fx.repo.EXPECT().ListSubscriptions(ctx).Return(records, nil)

	result, err := fx.service.ListSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.repo.EXPECT().DeleteSubscription(ctx, "user-1").Return(nil)

	require.NoError(t, fx.service.Unsubscribe(ctx, "user-1"))
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.repo.EXPECT().DeleteSubscription(ctx, "ghost").Return(repository.ErrSubscriptionNotFound)

	err := fx.service.Unsubscribe(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_Unsubscribe_MissingUserID(t *testing.T) {
	fx := createTestSubscriptionService(t)

	err := fx.service.Unsubscribe(context.Background(), " ")

	require.Error(t, err)
	fx.repo.AssertNotCalled(t, "DeleteSubscription", mock.Anything, mock.Anything)
}
