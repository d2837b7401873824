package impl

import (
	"context"
	"log/slog"
	"time"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/repository"
	"danyowa/internal/domain/schedule"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"
	"danyowa/internal/usecase"

	"go.uber.org/fx"
)

// subscriptionDeleter is implemented by snapshot providers that can also drop a record.
type subscriptionDeleter interface {
	DeleteSubscriptionIfEndpoint(ctx context.Context, userID, endpoint string) error
}

// ScheduleCheckParams holds the dependencies of the schedule check job
type ScheduleCheckParams struct {
	fx.In

	Logger   *slog.Logger
	Config   *config.Config
	Snapshot repository.SnapshotProvider
	PushSvc  service.PushService
	Clock    schedule.Clock `optional:"true"`
}

type scheduleCheckService struct {
	logger     *slog.Logger
	snapshot   repository.SnapshotProvider
	pushSvc    service.PushService
	clock      schedule.Clock
	location   *time.Location
	evaluator  *schedule.Evaluator
	dispatcher *dispatcher
}

// NewScheduleCheckService creates the schedule check job
func NewScheduleCheckService(params ScheduleCheckParams) (usecase.ScheduleCheckUsecase, error) {
	location, err := schedule.LoadLocation(params.Config.Cron.Timezone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cron timezone")
	}

	clock := params.Clock
	if clock == nil {
		clock = schedule.SystemClock
	}

	evaluator := schedule.NewEvaluator(schedule.EvaluatorOptions{
		IconURL:  params.Config.Notification.IconURL,
		BadgeURL: params.Config.Notification.BadgeURL,
		ClickURL: params.Config.Notification.ClickURL,
	})

	return &scheduleCheckService{
		logger:    params.Logger,
		snapshot:  params.Snapshot,
		pushSvc:   params.PushSvc,
		clock:     clock,
		location:  location,
		evaluator: evaluator,
		dispatcher: newDispatcher(
			params.PushSvc,
			params.Logger,
			params.Config.Dispatch.Concurrency,
			params.Config.Dispatch.SendTimeout,
		),
	}, nil
}

// CheckSchedules runs one evaluation pass for the current civil minute
func (s *scheduleCheckService) CheckSchedules(ctx context.Context) (*entity.JobSummary, error) {
	logger := ctxPkg.GetLoggerOrDefault(ctx, s.logger)

	now := schedule.Resolve(s.clock.Now(), s.location)
	summary := &entity.JobSummary{Time: now}

	logger.Info("Checking schedules",
		slog.String("hhmm", now.HHMM),
		slog.Int("day", now.DayOfWeek),
		slog.String("timezone", s.location.String()),
	)

	if err := s.pushSvc.Ready(); err != nil {
		logger.Error("Push transport is not ready", slog.Any("error", err))

		return summary, errors.Wrap(err, "push transport unavailable")
	}

	records, err := s.snapshot.ListSubscriptions(ctx)
	if err != nil {
		logger.Error("Failed to load subscription snapshot", slog.Any("error", err))

		return summary, errors.Wrap(err, "failed to list subscriptions")
	}
	summary.SubscriptionsChecked = len(records)

	var due []entity.OutboundNotification
	for _, record := range records {
		due = append(due, s.evaluator.Evaluate(now, record)...)
	}
	summary.Due = len(due)

	if len(due) > 0 {
		result := s.dispatcher.Dispatch(ctx, due)
		summary.Sent = result.Sent
		summary.Failed = result.Failed
		summary.Expired = result.Expired
	}

	s.removeExpired(ctx, logger, summary.Expired)

	logger.Info("Schedule check completed",
		slog.String("hhmm", now.HHMM),
		slog.Int("subscriptions_checked", summary.SubscriptionsChecked),
		slog.Int("due", summary.Due),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("expired", len(summary.Expired)),
	)

	return summary, nil
}

// removeExpired drops records whose endpoint the push service reported gone. A record is only
// removed while it still holds that endpoint; a user who re-subscribed after the snapshot keeps theirs.
func (s *scheduleCheckService) removeExpired(ctx context.Context, logger *slog.Logger, expired []entity.ExpiredSubscription) {
	if len(expired) == 0 {
		return
	}

	deleter, ok := s.snapshot.(subscriptionDeleter)
	if !ok {
		logger.Debug("Snapshot provider cannot delete records, keeping expired subscriptions",
			slog.Int("expired", len(expired)),
		)

		return
	}

	// Cleanup runs after dispatch and must not be cut short by the job deadline.
	cleanupCtx := context.WithoutCancel(ctx)
	for _, gone := range expired {
		err := deleter.DeleteSubscriptionIfEndpoint(cleanupCtx, gone.UserID, gone.Endpoint)
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			logger.Debug("Expired subscription already replaced or removed", slog.String("user_id", gone.UserID))

			continue
		}
		if err != nil {
			logger.Warn("Failed to remove expired subscription",
				slog.String("user_id", gone.UserID),
				slog.Any("error", err),
			)

			continue
		}

		logger.Info("Removed expired subscription", slog.String("user_id", gone.UserID))
	}
}
