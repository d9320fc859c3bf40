package appointment

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/models"
	"github.com/pawclinic/vet-scheduler/internal/timezone"
)

// ======================================================
// BATCH CONFIRM / CANCEL
// ======================================================

// BatchTransition walks a list of ids and transitions the eligible
// ones. Missing or ineligible ids are skipped without error; the
// caller only learns how many actually moved. This is per-item, not
// an atomic batch.
type BatchTransition struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewBatchTransition(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *BatchTransition {
	return &BatchTransition{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *BatchTransition) Confirm(
	ctx context.Context,
	ids []uint,
) (int, error) {
	return uc.apply(ctx, ids, "appointment_confirmed", domain.Confirm)
}

func (uc *BatchTransition) Cancel(
	ctx context.Context,
	ids []uint,
) (int, error) {
	now := timezone.NowIn(uc.tz)
	return uc.apply(ctx, ids, "appointment_cancelled", func(ap *models.Appointment) error {
		return domain.Cancel(ap, now)
	})
}

func (uc *BatchTransition) apply(
	ctx context.Context,
	ids []uint,
	action string,
	transition func(*models.Appointment) error,
) (int, error) {

	count := 0
	for _, id := range ids {
		ap, err := uc.repo.GetAppointmentByID(ctx, id)
		if err != nil {
			continue
		}

		if err := transition(ap); err != nil {
			continue
		}

		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			log.Warn().Err(err).Uint("appointment_id", id).Msg("batch transition skipped")
			continue
		}

		uc.audit.Dispatch(audit.Event{
			Action:   action,
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
		count++
	}

	return count, nil
}
