package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// IDEMPOTENT CREATE
// ======================================================

// CreateAppointmentIdempotent makes the public booking form safe to
// resubmit: an identical non-canceled booking is returned unchanged
// instead of duplicated.
type CreateAppointmentIdempotent struct {
	repo   domain.Repository
	create *CreateAppointment
}

func NewCreateAppointmentIdempotent(
	repo domain.Repository,
	create *CreateAppointment,
) *CreateAppointmentIdempotent {
	return &CreateAppointmentIdempotent{
		repo:   repo,
		create: create,
	}
}

func (uc *CreateAppointmentIdempotent) Execute(
	ctx context.Context,
	vetID uint,
	petID uint,
	date time.Time,
	slot domain.TimeSlot,
	notes string,
) (*models.Appointment, error) {

	existing, err := uc.repo.FindActiveBooking(ctx, vetID, petID, date, slot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return uc.create.Execute(ctx, CreateAppointmentInput{
		VetID:  vetID,
		PetID:  petID,
		Date:   date,
		Slot:   slot,
		Status: domain.InitialStatus(),
		Notes:  notes,
	})
}
