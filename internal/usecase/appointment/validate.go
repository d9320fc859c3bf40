package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
)

// ======================================================
// VALIDATION
// ======================================================

// validateBooking enforces the field-level rules shared by create and
// update: required fields, no past dates, and referenced vet/pet must
// exist. Conflict detection is a separate step.
func validateBooking(
	ctx context.Context,
	repo domain.Repository,
	vetID uint,
	petID uint,
	date time.Time,
	slot domain.TimeSlot,
	status domain.Status,
	today time.Time,
) error {

	if vetID == 0 {
		return httperr.ErrBusiness("missing_vet")
	}
	if petID == 0 {
		return httperr.ErrBusiness("missing_pet")
	}
	if date.IsZero() {
		return httperr.ErrBusiness("missing_date")
	}
	if !slot.IsValid() {
		return httperr.ErrBusiness("invalid_time_slot")
	}
	if !status.IsValid() {
		return httperr.ErrBusiness("invalid_status")
	}

	if date.Before(today) && !sameDay(date, today) {
		return httperr.ErrBusiness("past_date")
	}

	if _, err := repo.GetVetByID(ctx, vetID); err != nil {
		return httperr.ErrBusiness("vet_not_found")
	}
	if _, err := repo.GetPetByID(ctx, petID); err != nil {
		return httperr.ErrBusiness("pet_not_found")
	}

	return nil
}
