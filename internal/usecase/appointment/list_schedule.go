package appointment

import (
	"context"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/dto"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// ======================================================
// SCHEDULE QUERIES
// ======================================================

type ListSchedule struct {
	repo domain.Repository
}

func NewListSchedule(repo domain.Repository) *ListSchedule {
	return &ListSchedule{repo: repo}
}

func (uc *ListSchedule) ByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return ap, nil
}

func (uc *ListSchedule) ByVetAndDate(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListByVetAndDate(ctx, vetID, date)
	if err != nil {
		return nil, err
	}
	return toListDTOs(aps), nil
}

func (uc *ListSchedule) ByDate(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toListDTOs(aps), nil
}

func (uc *ListSchedule) ByOwner(
	ctx context.Context,
	ownerID uint,
) ([]dto.AppointmentListDTO, error) {

	aps, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toListDTOs(aps), nil
}

// ByVetAndWeek lists the vet's appointments for the week containing
// date. Weeks run Monday through Sunday.
func (uc *ListSchedule) ByVetAndWeek(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, time.Time, time.Time, error) {

	weekStart, weekEnd := WeekBounds(date)

	aps, err := uc.repo.ListByVetAndRange(ctx, vetID, weekStart, weekEnd)
	if err != nil {
		return nil, weekStart, weekEnd, err
	}
	return toListDTOs(aps), weekStart, weekEnd, nil
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	offset := int(day.Weekday()-time.Monday+7) % 7
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start, end
}

func toListDTOs(aps []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		item := dto.AppointmentListDTO{
			ID:        ap.ID,
			Reference: ap.Reference,
			Date:      ap.AppointmentDate,
			TimeSlot:  ap.TimeSlot,
			Status:    ap.Status,
			PetName:   ap.Pet.Name,
			Notes:     ap.Notes,
		}
		if ap.Vet.ID != 0 {
			item.VetName = ap.Vet.FullName()
		}
		if ap.Pet.Owner.ID != 0 {
			item.OwnerName = ap.Pet.Owner.FirstName + " " + ap.Pet.Owner.LastName
		}
		out = append(out, item)
	}
	return out
}
