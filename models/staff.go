package models

import "time"

type Staff struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name string `gorm:"size:255" json:"name"`
	Role string `gorm:"size:64" json:"role"`

	// Salary is the fixed monthly amount in THB.
	Salary  float64 `json:"salary"`
	Contact string  `gorm:"size:255" json:"contact,omitempty"`
}
