package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/pawclinic/vet-scheduler/internal/domain/appointment"
	"github.com/pawclinic/vet-scheduler/internal/httperr"
	"github.com/pawclinic/vet-scheduler/internal/models"
)

// fakeRepository is an in-memory domain.Repository for use case tests.
type fakeRepository struct {
	vets         map[uint]*models.Vet
	pets         map[uint]*models.Pet
	appointments map[uint]*models.Appointment
	nextID       uint

	createErr error
	updateErr error
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		vets:         map[uint]*models.Vet{},
		pets:         map[uint]*models.Pet{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepository) addVet(id uint) {
	f.vets[id] = &models.Vet{ID: id, FirstName: "James", LastName: "Carter"}
}

func (f *fakeRepository) addPet(id, ownerID uint) {
	f.pets[id] = &models.Pet{
		ID:      id,
		OwnerID: ownerID,
		Owner:   models.Owner{ID: ownerID, FirstName: "George", LastName: "Franklin"},
		Name:    "Leo",
		Type:    "cat",
	}
}

func (f *fakeRepository) GetVetByID(_ context.Context, id uint) (*models.Vet, error) {
	v, ok := f.vets[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return v, nil
}

func (f *fakeRepository) ListVets(_ context.Context) ([]models.Vet, error) {
	out := make([]models.Vet, 0, len(f.vets))
	for _, v := range f.vets {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeRepository) GetPetByID(_ context.Context, id uint) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepository) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	ap.ID = f.nextID
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) FindActiveBySlot(
	_ context.Context,
	vetID uint,
	date time.Time,
	slot domain.TimeSlot,
) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.VetID == vetID &&
			sameDay(ap.AppointmentDate, date) &&
			ap.TimeSlot == string(slot) &&
			domain.Status(ap.Status).IsActive() {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) FindActiveBooking(
	_ context.Context,
	vetID uint,
	petID uint,
	date time.Time,
	slot domain.TimeSlot,
) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.VetID == vetID &&
			ap.PetID == petID &&
			sameDay(ap.AppointmentDate, date) &&
			ap.TimeSlot == string(slot) &&
			domain.Status(ap.Status).IsActive() {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.appointments[ap.ID]
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	if stored.Version != ap.Version {
		return httperr.ErrBusiness("stale_write")
	}
	cp := *ap
	cp.Version = ap.Version + 1
	f.appointments[ap.ID] = &cp
	ap.Version = cp.Version
	return nil
}

func (f *fakeRepository) DeleteAppointment(_ context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepository) ListByVetAndDate(
	_ context.Context,
	vetID uint,
	date time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.VetID == vetID && sameDay(ap.AppointmentDate, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByDate(_ context.Context, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if sameDay(ap.AppointmentDate, date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByOwner(_ context.Context, ownerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		pet, ok := f.pets[ap.PetID]
		if ok && pet.OwnerID == ownerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByVetAndRange(
	_ context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.VetID == vetID && inRange(ap.AppointmentDate, start, end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) CountByVetAndRange(
	_ context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if ap.VetID == vetID && inRange(ap.AppointmentDate, start, end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepository) CountByVetAndRangeStatus(
	_ context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
	status domain.Status,
) (int64, error) {
	var count int64
	for _, ap := range f.appointments {
		if ap.VetID == vetID && inRange(ap.AppointmentDate, start, end) && ap.Status == string(status) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepository) ListForReminder(
	_ context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		status := domain.Status(ap.Status)
		if status != domain.StatusPending && status != domain.StatusConfirmed {
			continue
		}
		if inRange(ap.AppointmentDate, from, to) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func inRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
