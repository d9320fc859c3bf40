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
	"github.com/pawclinic/vet-scheduler/internal/models"
)

func newUpdateFixture(t *testing.T) (*fakeRepository, *UpdateAppointment, *models.Appointment) {
	t.Helper()

	repo, create := newCreateFixture()
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		VetID:  1,
		PetID:  1,
		Date:   testDate(1),
		Slot:   domain.Slot0900,
		Status: domain.StatusPending,
	})
	require.NoError(t, err)

	uc := NewUpdateAppointment(repo, audit.NewDispatcher(nil), testTZ)
	return repo, uc, ap
}

func TestUpdateAppointment(t *testing.T) {
	pinClock(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	t.Run("edits notes keeping the slot", func(t *testing.T) {
		_, uc, ap := newUpdateFixture(t)

		updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.Status(ap.Status),
			Notes:   "bring vaccination card",
			Version: ap.Version,
		})

		require.NoError(t, err)
		assert.Equal(t, "bring vaccination card", updated.Notes)
		assert.Equal(t, ap.Version+1, updated.Version)
		assert.Equal(t, ap.Reference, updated.Reference)
	})

	t.Run("moves to a free slot", func(t *testing.T) {
		repo, uc, ap := newUpdateFixture(t)

		updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.Slot1400,
			Status:  domain.Status(ap.Status),
			Version: ap.Version,
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.Slot1400), updated.TimeSlot)
		assert.Equal(t, string(domain.Slot1400), repo.appointments[ap.ID].TimeSlot)
	})

	t.Run("refuses a move onto a taken slot", func(t *testing.T) {
		repo, uc, ap := newUpdateFixture(t)

		create := NewCreateAppointment(repo, audit.NewDispatcher(nil), testTZ)
		repo.addPet(2, 1)
		_, err := create.Execute(context.Background(), CreateAppointmentInput{
			VetID:  1,
			PetID:  2,
			Date:   testDate(1),
			Slot:   domain.Slot1000,
			Status: domain.StatusPending,
		})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.Slot1000,
			Status:  domain.Status(ap.Status),
			Version: ap.Version,
		})
		assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	})

	t.Run("rejects a stale version", func(t *testing.T) {
		_, uc, ap := newUpdateFixture(t)

		in := UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.Status(ap.Status),
			Version: ap.Version,
		}

		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)

		// Second writer still holds the original version.
		_, err = uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "stale_write"))
	})

	t.Run("never resurrects a canceled appointment", func(t *testing.T) {
		repo, uc, ap := newUpdateFixture(t)

		now := time.Now()
		repo.appointments[ap.ID].Status = string(domain.StatusCanceled)
		repo.appointments[ap.ID].CanceledAt = &now

		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.StatusConfirmed,
			Version: repo.appointments[ap.ID].Version,
		})

		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		assert.Equal(t, string(domain.StatusCanceled), repo.appointments[ap.ID].Status)
	})

	t.Run("completed appointments are frozen", func(t *testing.T) {
		repo, uc, ap := newUpdateFixture(t)

		repo.appointments[ap.ID].Status = string(domain.StatusCompleted)

		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.StatusCompleted,
			Notes:   "late edit",
			Version: repo.appointments[ap.ID].Version,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("status edits ride the state machine", func(t *testing.T) {
		_, uc, ap := newUpdateFixture(t)

		// pending -> completed skips confirmation
		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.StatusCompleted,
			Version: ap.Version,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))

		// pending -> confirmed is a legal edit and stays editable
		updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.StatusConfirmed,
			Version: ap.Version,
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
	})

	t.Run("canceling through an edit stamps canceled_at", func(t *testing.T) {
		repo, uc, ap := newUpdateFixture(t)

		updated, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      ap.ID,
			VetID:   ap.VetID,
			PetID:   ap.PetID,
			Date:    ap.AppointmentDate,
			Slot:    domain.TimeSlot(ap.TimeSlot),
			Status:  domain.StatusCanceled,
			Version: ap.Version,
		})
		require.NoError(t, err)
		assert.NotNil(t, updated.CanceledAt)
		assert.Equal(t, string(domain.StatusCanceled), repo.appointments[ap.ID].Status)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, uc, _ := newUpdateFixture(t)

		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ID:      999,
			VetID:   1,
			PetID:   1,
			Date:    testDate(1),
			Slot:    domain.Slot0900,
			Status:  domain.StatusPending,
			Version: 1,
		})
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}
