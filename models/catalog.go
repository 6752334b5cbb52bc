package models

import "time"

// Catalog entries: priced, reusable item definitions independent of any
// specific sale. The finance core treats them as read-only inputs.

type Activity struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `gorm:"size:255" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Price per person.
	Price float64 `json:"price"`

	// Cost per person owed to an external tour partner, if the activity is
	// outsourced. Nil means the hostel runs it itself.
	Cost *float64 `json:"cost,omitempty"`

	// Commission per person for the selling staff member.
	Commission float64 `json:"commission"`
}

type SpeedBoatTrip struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Route   string `gorm:"size:255" json:"route"`
	Company string `gorm:"size:255;index" json:"company"`

	Price float64 `json:"price"`

	// Cost per seat owed to the operating boat company.
	Cost       float64 `json:"cost"`
	Commission float64 `json:"commission"`
}

type TaxiBoatOption struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name       string  `gorm:"size:255" json:"name"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
}

type Extra struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name  string  `gorm:"size:255" json:"name"`
	Price float64 `json:"price"`
}
