package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pawclinic/vet-scheduler/internal/models"
	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// ======================================================
// DASHBOARD AGGREGATOR
// ======================================================

type TypeCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type Dashboard struct {
	TotalOwners     int64          `json:"total_owners"`
	TotalPets       int64          `json:"total_pets"`
	TotalVets       int64          `json:"total_vets"`
	TodayVisits     int64          `json:"today_visits"`
	ThisMonthVisits int64          `json:"this_month_visits"`
	VisitTrend      []TrendPoint   `json:"visit_trend"`
	PetTypes        []TypeCount    `json:"pet_type_distribution"`
	RecentVisits    []models.Visit `json:"recent_visits"`
}

type Repository interface {
	CountOwners(ctx context.Context) (int64, error)
	CountPets(ctx context.Context) (int64, error)
	CountVets(ctx context.Context) (int64, error)
	CountVisitsBetween(ctx context.Context, start, end time.Time) (int64, error)
	VisitCountsByDay(ctx context.Context, start, end time.Time) (map[string]int64, error)
	PetTypeCounts(ctx context.Context) ([]TypeCount, error)
	RecentVisits(ctx context.Context, limit int) ([]models.Visit, error)
}

// Cache holds a serialized dashboard for a bounded interval. Both
// sides are best-effort: any cache failure falls through to a live
// aggregation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const cacheKey = "stats:dashboard"

type GetDashboard struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	tz    string

	now func() time.Time
}

func NewGetDashboard(
	repo Repository,
	cache Cache,
	ttl time.Duration,
	tz string,
) *GetDashboard {
	return &GetDashboard{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		tz:    tz,
		now:   time.Now,
	}
}

func (uc *GetDashboard) Execute(ctx context.Context) (*Dashboard, error) {
	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, cacheKey); ok {
			var cached Dashboard
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
			log.Warn().Msg("discarding unreadable dashboard cache entry")
		}
	}

	dash, err := uc.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && uc.ttl > 0 {
		if raw, err := json.Marshal(dash); err == nil {
			uc.cache.Set(ctx, cacheKey, raw, uc.ttl)
		}
	}

	return dash, nil
}

func (uc *GetDashboard) aggregate(ctx context.Context) (*Dashboard, error) {
	now := uc.now().In(timezone.Location(uc.tz))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	dash := &Dashboard{}
	var err error

	if dash.TotalOwners, err = uc.repo.CountOwners(ctx); err != nil {
		return nil, err
	}
	if dash.TotalPets, err = uc.repo.CountPets(ctx); err != nil {
		return nil, err
	}
	if dash.TotalVets, err = uc.repo.CountVets(ctx); err != nil {
		return nil, err
	}
	if dash.TodayVisits, err = uc.repo.CountVisitsBetween(ctx, today, today); err != nil {
		return nil, err
	}
	if dash.ThisMonthVisits, err = uc.repo.CountVisitsBetween(ctx, monthStart, monthEnd); err != nil {
		return nil, err
	}

	trendStart := today.AddDate(0, 0, -6)
	counts, err := uc.repo.VisitCountsByDay(ctx, trendStart, today)
	if err != nil {
		return nil, err
	}
	dash.VisitTrend = BuildTrend(counts, trendStart, 7)

	if dash.PetTypes, err = uc.repo.PetTypeCounts(ctx); err != nil {
		return nil, err
	}
	if dash.RecentVisits, err = uc.repo.RecentVisits(ctx, 10); err != nil {
		return nil, err
	}

	return dash, nil
}

// BuildTrend turns a sparse day->count map into exactly `days` points
// starting at start, zero-filling days with no visits.
func BuildTrend(counts map[string]int64, start time.Time, days int) []TrendPoint {
	trend := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, TrendPoint{
			Date:  day,
			Count: counts[day],
		})
	}
	return trend
}
