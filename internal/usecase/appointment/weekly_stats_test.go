package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

func TestWeekBounds(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	start, end := WeekBounds(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), end)

	// Monday and Sunday map onto their own week.
	start, _ = WeekBounds(time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)

	start, end = WeekBounds(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), end)
}

func TestGetWeeklyStats(t *testing.T) {
	repo := newFakeRepository()

	seed := func(day int, status domain.Status) {
		repo.nextID++
		repo.appointments[repo.nextID] = &models.Appointment{
			ID:              repo.nextID,
			VetID:           1,
			PetID:           1,
			AppointmentDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
			TimeSlot:        string(domain.Slot0900),
			Status:          string(status),
			Version:         1,
		}
	}

	for i := 0; i < 4; i++ {
		seed(i%7, domain.StatusCompleted)
	}
	seed(1, domain.StatusCanceled)
	seed(2, domain.StatusCanceled)
	seed(3, domain.StatusPending)
	seed(4, domain.StatusPending)
	seed(5, domain.StatusConfirmed)
	seed(6, domain.StatusConfirmed)

	// Out of range and out of vet, both invisible.
	repo.appointments[100] = &models.Appointment{
		ID: 100, VetID: 1,
		AppointmentDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		Status:          string(domain.StatusPending),
	}
	repo.appointments[101] = &models.Appointment{
		ID: 101, VetID: 2,
		AppointmentDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:          string(domain.StatusPending),
	}

	uc := NewGetWeeklyStats(repo)
	stats, err := uc.Execute(context.Background(), 1, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(4), stats.Completed)
	assert.Equal(t, int64(2), stats.Canceled)
	assert.Equal(t, int64(4), stats.Pending)
}
