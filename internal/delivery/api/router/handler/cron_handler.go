package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"danyowa/config"
	ctxPkg "danyowa/internal/delivery/context"
	"danyowa/internal/domain/entity"
	domainerrors "danyowa/internal/domain/errors"
	"danyowa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CronHandlerParams holds dependencies for CronHandler, injected by Fx.
type CronHandlerParams struct {
	fx.In

	ScheduleCheckUC usecase.ScheduleCheckUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// CronHandler runs the schedule check for an external scheduler
type CronHandler struct {
	scheduleCheckUC usecase.ScheduleCheckUsecase
	jobTimeout      time.Duration
	logger          *slog.Logger
}

// NewCronHandler is the constructor for CronHandler
func NewCronHandler(params CronHandlerParams) *CronHandler {
	return &CronHandler{
		scheduleCheckUC: params.ScheduleCheckUC,
		jobTimeout:      params.Config.Cron.JobTimeout,
		logger:          params.Logger,
	}
}

// CronSummaryResponse is the job summary document returned to the scheduler
type CronSummaryResponse struct {
	Success              bool   `json:"success"`
	Message              string `json:"message,omitempty"`
	Error                string `json:"error,omitempty"`
	Details              string `json:"details,omitempty"`
	Time                 string `json:"time"`
	Day                  int    `json:"day"`
	SubscriptionsChecked int    `json:"subscriptionsChecked"`
	Failed               int    `json:"failed"`
}

// NewCronSummaryResponse renders a job outcome
func NewCronSummaryResponse(summary *entity.JobSummary, err error) CronSummaryResponse {
	if summary == nil {
		summary = &entity.JobSummary{}
	}

	resp := CronSummaryResponse{
		Success:              err == nil,
		Time:                 summary.Time.HHMM,
		Day:                  summary.Time.DayOfWeek,
		SubscriptionsChecked: summary.SubscriptionsChecked,
		Failed:               summary.Failed,
	}
	if err != nil {
		resp.Error = domainerrors.ErrCronJobFailed.Message()
		resp.Details = err.Error()

		return resp
	}
	resp.Message = fmt.Sprintf("Cron completed. Sent %d notifications.", summary.Sent)

	return resp
}

// CheckSchedules runs one evaluation pass and reports the summary
func (h *CronHandler) CheckSchedules(c echo.Context) error {
	ctx := c.Request().Context()
	if h.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.jobTimeout)
		defer cancel()
	}

	summary, err := h.scheduleCheckUC.CheckSchedules(ctx)
	resp := NewCronSummaryResponse(summary, err)
	if err != nil {
		ctxPkg.GetLoggerOrDefault(ctx, h.logger).Error("Cron job failed", slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, resp)
	}

	return c.JSON(http.StatusOK, resp)
}
