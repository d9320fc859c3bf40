package appointment

import (
	"context"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
)

// ======================================================
// DELETE (administrative hard delete)
// ======================================================

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
