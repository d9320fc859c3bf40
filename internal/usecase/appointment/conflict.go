package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
)

// ======================================================
// CONFLICT CHECKER
// ======================================================

// ConflictChecker answers whether a (vet, date, slot) claim is free.
// It is the fast path only: the partial unique index on appointments
// is the final arbiter when two creates race.
type ConflictChecker struct {
	repo domain.Repository
}

func NewConflictChecker(repo domain.Repository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

// IsSlotAvailable reports whether the slot is free for the vet on the
// given date. excludeID skips the caller's own appointment, so moving
// an appointment onto the slot it already holds is not a conflict.
// excludeID == 0 means no exclusion.
func (c *ConflictChecker) IsSlotAvailable(
	ctx context.Context,
	vetID uint,
	date time.Time,
	slot domain.TimeSlot,
	excludeID uint,
) (bool, error) {

	existing, err := c.repo.FindActiveBySlot(ctx, vetID, date, slot)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return true, nil
	}
	if excludeID != 0 && existing.ID == excludeID {
		return true, nil
	}
	return false, nil
}
