package appointment

import (
	"context"
	"time"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	ID uint

	VetID uint
	PetID uint

	Date   time.Time
	Slot   domain.TimeSlot
	Status domain.Status

	Notes string

	// Version the client read before editing; a mismatch at write time
	// is a stale_write, distinct from a slot conflict.
	Version int
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo    domain.Repository
	checker *ConflictChecker
	audit   *audit.Dispatcher
	tz      string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		checker: NewConflictChecker(repo),
		audit:   audit,
		tz:      tz,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	stored, err := uc.repo.GetAppointmentByID(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Completed and canceled appointments are frozen; in particular a
	// canceled one must never get its slot claim back through an edit.
	storedStatus := domain.Status(stored.Status)
	if storedStatus.IsTerminal() {
		return nil, httperr.ErrBusiness("invalid_state")
	}
	if err := domain.CanChange(storedStatus, in.Status); err != nil {
		return nil, err
	}

	today := todayIn(uc.tz)
	if err := validateBooking(
		ctx, uc.repo,
		in.VetID, in.PetID, in.Date, in.Slot, in.Status,
		today,
	); err != nil {
		return nil, err
	}

	slotMoved := stored.VetID != in.VetID ||
		!sameDay(stored.AppointmentDate, in.Date) ||
		stored.TimeSlot != string(in.Slot)

	if slotMoved {
		available, err := uc.checker.IsSlotAvailable(ctx, in.VetID, in.Date, in.Slot, in.ID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	canceledAt := stored.CanceledAt
	completedAt := stored.CompletedAt
	if in.Status != storedStatus {
		now := timezone.NowIn(uc.tz)
		switch in.Status {
		case domain.StatusCanceled:
			canceledAt = &now
		case domain.StatusCompleted:
			completedAt = &now
		}
	}

	ap := &models.Appointment{
		ID:              in.ID,
		Reference:       stored.Reference,
		VetID:           in.VetID,
		PetID:           in.PetID,
		AppointmentDate: in.Date,
		TimeSlot:        string(in.Slot),
		Status:          string(in.Status),
		Notes:           in.Notes,
		Version:         in.Version,
		CanceledAt:      canceledAt,
		CompletedAt:     completedAt,
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
