package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

const dateLayout = "2006-01-02"

// --------------------------------------------------
// Vet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetVetByID(
	ctx context.Context,
	id uint,
) (*models.Vet, error) {

	var vet models.Vet
	if err := r.db.WithContext(ctx).First(&vet, id).Error; err != nil {
		return nil, err
	}
	return &vet, nil
}

func (r *AppointmentGormRepository) ListVets(
	ctx context.Context,
) ([]models.Vet, error) {

	var vets []models.Vet
	if err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&vets).Error; err != nil {
		return nil, err
	}
	return vets, nil
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPetByID(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) FindActiveBySlot(
	ctx context.Context,
	vetID uint,
	date time.Time,
	slot domain.TimeSlot,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"vet_id = ? AND appointment_date = ? AND time_slot = ? AND status <> ?",
			vetID, date.Format(dateLayout), string(slot), string(domain.StatusCanceled),
		).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) FindActiveBooking(
	ctx context.Context,
	vetID uint,
	petID uint,
	date time.Time,
	slot domain.TimeSlot,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"vet_id = ? AND pet_id = ? AND appointment_date = ? AND time_slot = ? AND status <> ?",
			vetID, petID, date.Format(dateLayout), string(slot), string(domain.StatusCanceled),
		).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vet").
		Preload("Pet").
		Preload("Pet.Owner").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND version = ?", ap.ID, ap.Version).
		Updates(map[string]any{
			"vet_id":           ap.VetID,
			"pet_id":           ap.PetID,
			"appointment_date": ap.AppointmentDate.Format(dateLayout),
			"time_slot":        ap.TimeSlot,
			"status":           ap.Status,
			"notes":            ap.Notes,
			"canceled_at":      ap.CanceledAt,
			"completed_at":     ap.CompletedAt,
			"version":          ap.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		// Either the row is gone or someone wrote in between. Tell the
		// caller which, the two are handled differently upstream.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return httperr.ErrBusiness("stale_write")
	}

	ap.Version++
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByVetAndDate(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Pet.Owner").
		Where("vet_id = ? AND appointment_date = ?", vetID, date.Format(dateLayout)).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vet").
		Preload("Pet").
		Preload("Pet.Owner").
		Where("appointment_date = ?", date.Format(dateLayout)).
		Order("time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vet").
		Preload("Pet").
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Order("appointments.appointment_date ASC, appointments.time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListByVetAndRange(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Pet.Owner").
		Where(
			"vet_id = ? AND appointment_date BETWEEN ? AND ?",
			vetID, start.Format(dateLayout), end.Format(dateLayout),
		).
		Order("appointment_date ASC, time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CountByVetAndRange(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"vet_id = ? AND appointment_date BETWEEN ? AND ?",
			vetID, start.Format(dateLayout), end.Format(dateLayout),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountByVetAndRangeStatus(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
	status domain.Status,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"vet_id = ? AND appointment_date BETWEEN ? AND ? AND status = ?",
			vetID, start.Format(dateLayout), end.Format(dateLayout), string(status),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) ListForReminder(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Vet").
		Preload("Pet").
		Preload("Pet.Owner").
		Where(
			"appointment_date BETWEEN ? AND ? AND status IN ?",
			from.Format(dateLayout), to.Format(dateLayout),
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		).
		Order("appointment_date ASC, time_slot ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
