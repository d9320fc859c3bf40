package appointment

import (
	"context"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// ======================================================
// STATUS TRANSITIONS (confirm / complete / cancel)
// ======================================================

type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *TransitionAppointment) Confirm(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return uc.apply(ctx, id, "appointment_confirmed", domain.Confirm)
}

func (uc *TransitionAppointment) Complete(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	now := timezone.NowIn(uc.tz)
	return uc.apply(ctx, id, "appointment_completed", func(ap *models.Appointment) error {
		return domain.Complete(ap, now)
	})
}

// Cancel flags the appointment canceled; the row stays behind and the
// slot claim is released. A canceled appointment is never reused, a
// fresh booking has to be created instead.
func (uc *TransitionAppointment) Cancel(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	now := timezone.NowIn(uc.tz)
	return uc.apply(ctx, id, "appointment_cancelled", func(ap *models.Appointment) error {
		return domain.Cancel(ap, now)
	})
}

func (uc *TransitionAppointment) apply(
	ctx context.Context,
	id uint,
	action string,
	transition func(*models.Appointment) error,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := transition(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
