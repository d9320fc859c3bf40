package models

import "time"

type Vet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vet) FullName() string {
	return v.FirstName + " " + v.LastName
}
