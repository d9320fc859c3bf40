package models

import "time"

type Pet struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OwnerID uint  `json:"owner_id"`
	Owner   Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"owner"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Type      string     `gorm:"size:50" json:"type"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
