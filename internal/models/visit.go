package models

import "time"

type Visit struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	VisitDate   time.Time `gorm:"type:date;index" json:"visit_date"`
	Description string    `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
