package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pawclinic/vet-scheduler/internal/models"
	"github.com/pawclinic/vet-scheduler/internal/usecase/stats"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) CountOwners(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Owner{}).Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) CountPets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Pet{}).Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) CountVets(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Vet{}).Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) CountVisitsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where(
			"visit_date BETWEEN ? AND ?",
			start.Format(dateLayout), end.Format(dateLayout),
		).
		Count(&count).Error
	return count, err
}

func (r *StatsGormRepository) VisitCountsByDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (map[string]int64, error) {

	type row struct {
		Day   time.Time
		Count int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Select("visit_date AS day, COUNT(*) AS count").
		Where(
			"visit_date BETWEEN ? AND ?",
			start.Format(dateLayout), end.Format(dateLayout),
		).
		Group("visit_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Day.Format(dateLayout)] = r.Count
	}
	return counts, nil
}

func (r *StatsGormRepository) PetTypeCounts(ctx context.Context) ([]stats.TypeCount, error) {
	var rows []stats.TypeCount
	err := r.db.WithContext(ctx).
		Model(&models.Pet{}).
		Select("type AS name, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *StatsGormRepository) RecentVisits(ctx context.Context, limit int) ([]models.Visit, error) {
	var visits []models.Visit
	err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Pet.Owner").
		Order("visit_date DESC, id DESC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

// Compile-time check
var _ stats.Repository = (*StatsGormRepository)(nil)
