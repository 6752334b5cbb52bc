package models

import "time"

// ExternalSale is non-itemized POS revenue (the shop till, laundry, etc.).
type ExternalSale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Date        string  `gorm:"size:10;index" json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `gorm:"size:255" json:"description,omitempty"`
}

// PlatformPayment is a bulk settlement transferred by an OTA platform. It is
// a settlement batch, not a sum derivable from individual stays, so it is a
// revenue stream of its own.
type PlatformPayment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Date             string  `gorm:"size:10;index" json:"date"`
	Platform         string  `gorm:"size:64" json:"platform"`
	Amount           float64 `json:"amount"`
	BookingReference string  `gorm:"size:128" json:"bookingReference,omitempty"`
}

// UtilityRecord is an operating cost line (electricity, water, internet...).
type UtilityRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Date     string  `gorm:"size:10;index" json:"date"`
	Cost     float64 `json:"cost"`
	Category string  `gorm:"size:64" json:"category"`
}

// SalaryAdvance reduces what is still owed to a staff member; it never
// changes the gross payroll figure.
type SalaryAdvance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	StaffID uint    `gorm:"column:staff_id;index" json:"staffId"`
	Date    string  `gorm:"size:10;index" json:"date"`
	Amount  float64 `json:"amount"`
}

// Absence is a single missed day, deducted from payroll at the staff
// member's daily rate for that calendar month.
type Absence struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	StaffID uint   `gorm:"column:staff_id;index" json:"staffId"`
	Date    string `gorm:"size:10;index" json:"date"`
}
