package dto

import "time"

type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	Reference string    `json:"reference"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Status    string    `json:"status"`
	VetName   string    `json:"vet_name,omitempty"`
	PetName   string    `json:"pet_name"`
	OwnerName string    `json:"owner_name,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
