package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Booking reference handed to the owner, stable across updates
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	VetID uint `gorm:"index" json:"vet_id"`
	Vet   Vet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vet"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	AppointmentDate time.Time `gorm:"type:date" json:"appointment_date"`
	TimeSlot        string    `gorm:"size:20" json:"time_slot"`

	Status string `gorm:"size:30;default:'pending_confirmation'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	// Bumped on every write; stale updates are rejected
	Version int `gorm:"default:1" json:"version"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
