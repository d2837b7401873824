package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/service"
	"danyowa/internal/errors"

	"golang.org/x/sync/errgroup"
)

const (
	defaultDispatchConcurrency = 8
	defaultSendTimeout         = 10 * time.Second
)

// DispatchResult aggregates the outcome of one dispatch batch
type DispatchResult struct {
	Sent    int
	Failed  int
	Expired []entity.ExpiredSubscription
}

// dispatcher sends every notification independently with a bounded number in flight.
// A failed send is logged and counted; it never stops the rest of the batch and is not retried.
type dispatcher struct {
	pushSvc     service.PushService
	logger      *slog.Logger
	concurrency int
	sendTimeout time.Duration
}

func newDispatcher(pushSvc service.PushService, logger *slog.Logger, concurrency int, sendTimeout time.Duration) *dispatcher {
	if concurrency <= 0 {
		concurrency = defaultDispatchConcurrency
	}
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}

	return &dispatcher{
		pushSvc:     pushSvc,
		logger:      logger,
		concurrency: concurrency,
		sendTimeout: sendTimeout,
	}
}

// Dispatch delivers the notifications and waits for every started send.
// Once ctx is done no new send starts; the unattempted notifications count as failed.
func (d *dispatcher) Dispatch(ctx context.Context, notifications []entity.OutboundNotification) DispatchResult {
	logger := ctxPkg.GetLoggerOrDefault(ctx, d.logger)

	var (
		sent, failed atomic.Int64
		mu           sync.Mutex
		expired      []entity.ExpiredSubscription
		group        errgroup.Group
	)
	group.SetLimit(d.concurrency)

	for idx := range notifications {
		if ctx.Err() != nil {
			failed.Add(int64(len(notifications) - idx))
			logger.Warn("Dispatch cancelled, skipping remaining notifications",
				slog.Int("skipped", len(notifications)-idx),
				slog.Any("error", ctx.Err()),
			)

			break
		}

		notification := &notifications[idx]
		group.Go(func() error {
			if err := d.send(ctx, notification); err != nil {
				failed.Add(1)
				logger.Warn("Failed to deliver notification",
					slog.String("user_id", notification.UserID),
					slog.String("kind", string(notification.Kind)),
					slog.String("schedule_id", notification.ScheduleID),
					slog.Any("error", err),
				)

				if errors.Is(err, service.ErrSubscriptionGone) && notification.UserID != "" {
					mu.Lock()
					expired = append(expired, entity.ExpiredSubscription{
						UserID:   notification.UserID,
						Endpoint: notification.Subscription.Endpoint,
					})
					mu.Unlock()
				}

				return nil
			}

			sent.Add(1)
			logger.Debug("Notification delivered",
				slog.String("user_id", notification.UserID),
				slog.String("kind", string(notification.Kind)),
				slog.String("schedule_id", notification.ScheduleID),
			)

			return nil
		})
	}

	// Sends report their failures through the counters, never through the group.
	_ = group.Wait()

	return DispatchResult{
		Sent:    int(sent.Load()),
		Failed:  int(failed.Load()),
		Expired: uniqueExpired(expired),
	}
}

func (d *dispatcher) send(ctx context.Context, notification *entity.OutboundNotification) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "dispatch cancelled before send")
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	return d.pushSvc.Send(sendCtx, notification)
}

func uniqueExpired(values []entity.ExpiredSubscription) []entity.ExpiredSubscription {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[entity.ExpiredSubscription]struct{}, len(values))
	unique := make([]entity.ExpiredSubscription, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}

	return unique
}
