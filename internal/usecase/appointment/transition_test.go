package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawclinic/vet-scheduler/internal/audit"
	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
)

func seedAppointment(t *testing.T, repo *fakeRepository, slot domain.TimeSlot, status domain.Status) uint {
	t.Helper()

	create := NewCreateAppointment(repo, audit.NewDispatcher(nil), testTZ)
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		VetID:  1,
		PetID:  1,
		Date:   testDate(1),
		Slot:   slot,
		Status: status,
	})
	require.NoError(t, err)
	return ap.ID
}

func TestTransitionAppointment(t *testing.T) {
	pinClock(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	newFixture := func(t *testing.T) (*fakeRepository, *TransitionAppointment) {
		repo := newFakeRepository()
		repo.addVet(1)
		repo.addPet(1, 1)
		return repo, NewTransitionAppointment(repo, audit.NewDispatcher(nil), testTZ)
	}

	t.Run("confirm a pending appointment", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusPending)

		ap, err := uc.Confirm(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	})

	t.Run("confirm is not repeatable", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusPending)

		_, err := uc.Confirm(context.Background(), id)
		require.NoError(t, err)

		_, err = uc.Confirm(context.Background(), id)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("complete requires confirmation first", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusPending)

		_, err := uc.Complete(context.Background(), id)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("complete a confirmed appointment", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusConfirmed)

		ap, err := uc.Complete(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), ap.Status)
		assert.NotNil(t, ap.CompletedAt)
	})

	t.Run("cancel a confirmed appointment", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusConfirmed)

		ap, err := uc.Cancel(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCanceled), ap.Status)
		assert.NotNil(t, ap.CanceledAt)
	})

	t.Run("cancel a completed appointment fails", func(t *testing.T) {
		repo, uc := newFixture(t)
		id := seedAppointment(t, repo, domain.Slot0900, domain.StatusCompleted)

		_, err := uc.Cancel(context.Background(), id)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, uc := newFixture(t)

		_, err := uc.Confirm(context.Background(), 42)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestBatchTransition(t *testing.T) {
	pinClock(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	t.Run("confirm skips non-pending and missing ids", func(t *testing.T) {
		repo := newFakeRepository()
		repo.addVet(1)
		repo.addPet(1, 1)

		pendingID := seedAppointment(t, repo, domain.Slot0900, domain.StatusPending)
		confirmedID := seedAppointment(t, repo, domain.Slot1000, domain.StatusConfirmed)

		uc := NewBatchTransition(repo, audit.NewDispatcher(nil), testTZ)

		count, err := uc.Confirm(context.Background(), []uint{pendingID, confirmedID, 999})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, string(domain.StatusConfirmed), repo.appointments[pendingID].Status)
	})

	t.Run("cancel flips every cancellable appointment", func(t *testing.T) {
		repo := newFakeRepository()
		repo.addVet(1)
		repo.addPet(1, 1)

		pendingID := seedAppointment(t, repo, domain.Slot0900, domain.StatusPending)
		confirmedID := seedAppointment(t, repo, domain.Slot1000, domain.StatusConfirmed)
		completedID := seedAppointment(t, repo, domain.Slot1100, domain.StatusCompleted)

		uc := NewBatchTransition(repo, audit.NewDispatcher(nil), testTZ)

		count, err := uc.Cancel(context.Background(), []uint{pendingID, confirmedID, completedID})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, string(domain.StatusCompleted), repo.appointments[completedID].Status)
	})
}
