package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
)

// ======================================================
// WEEKLY STATS
// ======================================================

type WeeklyStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Canceled  int64 `json:"canceled"`
	Pending   int64 `json:"pending"`
}

type GetWeeklyStats struct {
	repo domain.Repository
}

func NewGetWeeklyStats(repo domain.Repository) *GetWeeklyStats {
	return &GetWeeklyStats{repo: repo}
}

// Execute aggregates the vet's appointments for the week containing
// date. Pending is derived, not counted: total - completed - canceled.
func (uc *GetWeeklyStats) Execute(
	ctx context.Context,
	vetID uint,
	date time.Time,
) (*WeeklyStats, error) {

	weekStart, weekEnd := WeekBounds(date)

	total, err := uc.repo.CountByVetAndRange(ctx, vetID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	completed, err := uc.repo.CountByVetAndRangeStatus(ctx, vetID, weekStart, weekEnd, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	canceled, err := uc.repo.CountByVetAndRangeStatus(ctx, vetID, weekStart, weekEnd, domain.StatusCanceled)
	if err != nil {
		return nil, err
	}

	return &WeeklyStats{
		Total:     total,
		Completed: completed,
		Canceled:  canceled,
		Pending:   total - completed - canceled,
	}, nil
}
