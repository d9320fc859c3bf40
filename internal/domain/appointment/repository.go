package appointment

import (
	"context"
	"time"

	"github.com/pawclinic/vet-scheduler/internal/models"
)

type Repository interface {
	// -------- Vet --------
	GetVetByID(
		ctx context.Context,
		id uint,
	) (*models.Vet, error)

	ListVets(
		ctx context.Context,
	) ([]models.Vet, error)

	// -------- Pet --------
	GetPetByID(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// FindActiveBySlot returns the non-canceled appointment occupying
	// (vet, date, slot), or nil when the slot is free.
	FindActiveBySlot(
		ctx context.Context,
		vetID uint,
		date time.Time,
		slot TimeSlot,
	) (*models.Appointment, error)

	// FindActiveBooking is the idempotency lookup: the exact
	// (vet, pet, date, slot) tuple, non-canceled.
	FindActiveBooking(
		ctx context.Context,
		vetID uint,
		petID uint,
		date time.Time,
		slot TimeSlot,
	) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateAppointment persists ap guarded by its version counter and
	// bumps the version. A concurrent write since ap was read surfaces
	// as a stale_write business error.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Queries --------
	ListByVetAndDate(
		ctx context.Context,
		vetID uint,
		date time.Time,
	) ([]models.Appointment, error)

	ListByDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ListByOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	ListByVetAndRange(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	CountByVetAndRange(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountByVetAndRangeStatus(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
		status Status,
	) (int64, error)

	// ListForReminder returns pending or confirmed appointments dated
	// between from and to inclusive, with Vet, Pet and Pet.Owner loaded.
	ListForReminder(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)
}
