package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
)

// ======================================================
// AVAILABLE SLOTS
// ======================================================

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute returns the slot catalog minus the slots already claimed by
// a non-canceled appointment for the vet on that day, in chronological
// order.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]domain.TimeSlot, error) {

	appointments, err := uc.repo.ListByVetAndDate(ctx, vetID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[domain.TimeSlot]bool, len(appointments))
	for _, ap := range appointments {
		if domain.Status(ap.Status).IsActive() {
			booked[domain.TimeSlot(ap.TimeSlot)] = true
		}
	}

	free := make([]domain.TimeSlot, 0, len(domain.AllSlots()))
	for _, slot := range domain.AllSlots() {
		if !booked[slot] {
			free = append(free, slot)
		}
	}

	return free, nil
}
