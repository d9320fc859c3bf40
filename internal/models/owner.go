package models

import "time"

type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Address   string `gorm:"size:255" json:"address"`
	City      string `gorm:"size:100" json:"city"`
	Telephone string `gorm:"size:20" json:"telephone"`
	Email     string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
