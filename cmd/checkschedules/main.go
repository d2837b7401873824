// Command checkschedules runs a single schedule check pass, for hosts driven by system cron.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"danyowa/config"
	"danyowa/internal/delivery/api/router/handler"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/lifecycle"
	logs "danyowa/internal/infra/log"
	"danyowa/internal/infra/persistence"
	"danyowa/internal/infra/pubsub"
	"danyowa/internal/infra/push"
	"danyowa/internal/usecase"
	"danyowa/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfg     *config.Config
		logger  *slog.Logger
		checkUC usecase.ScheduleCheckUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			// Stdout carries the summary document.
			func() io.Writer { return os.Stderr },
			persistence.NewSubscriptionRepository,
			pubsub.NewEventPublisher,
			push.NewPushService,
			impl.NewScheduleCheckService,
		),
		fx.Populate(&cfg, &logger, &checkUC),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build application", slog.Any("error", err))

		return 1
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		logger.Error("Failed to start application", slog.Any("error", err))

		return 1
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	jobCtx := ctxPkg.WithRequestScope(context.Background(), "", logger)
	if cfg.Cron.JobTimeout > 0 {
		var cancelJob context.CancelFunc
		jobCtx, cancelJob = context.WithTimeout(jobCtx, cfg.Cron.JobTimeout)
		defer cancelJob()
	}

	summary, jobErr := checkUC.CheckSchedules(jobCtx)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(handler.NewCronSummaryResponse(summary, jobErr)); err != nil {
		logger.Error("Failed to write summary", slog.Any("error", err))

		return 1
	}

	if jobErr != nil {
		return 1
	}

	return 0
}
