package usecase

import (
	"context"

	"danyowa/internal/domain/entity"
)

// ScheduleCheckUsecase defines the periodic schedule check job
type ScheduleCheckUsecase interface {
	// CheckSchedules evaluates every subscription for the current civil minute and dispatches
	// the due notifications. Delivery failures are counted in the summary; only job-level failures
	// (push transport unavailable, snapshot unavailable) return an error. The summary is never nil.
	CheckSchedules(ctx context.Context) (*entity.JobSummary, error)
}
