package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	VetID uint
	PetID uint

	Date   time.Time
	Slot   domain.TimeSlot
	Status domain.Status

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	checker *ConflictChecker
	audit   *audit.Dispatcher
	tz      string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		checker: NewConflictChecker(repo),
		audit:   audit,
		tz:      tz,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	today := todayIn(uc.tz)

	if err := validateBooking(
		ctx, uc.repo,
		in.VetID, in.PetID, in.Date, in.Slot, in.Status,
		today,
	); err != nil {
		return nil, err
	}

	available, err := uc.checker.IsSlotAvailable(ctx, in.VetID, in.Date, in.Slot, 0)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		VetID:           in.VetID,
		PetID:           in.PetID,
		AppointmentDate: in.Date,
		TimeSlot:        string(in.Slot),
		Status:          string(in.Status),
		Notes:           in.Notes,
		Version:         1,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// Two creates raced past the checker; the index decided.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
