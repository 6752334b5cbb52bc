package models

import "time"

// WalkInGuest is a stay sold at the desk. AmountPaid is the cash actually
// collected so far, which is what the report recognizes as revenue; the full
// contracted price is pricePerNight * numberOfNights.
type WalkInGuest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomID    *uint  `gorm:"column:room_id;index" json:"roomId,omitempty"`
	GuestName string `gorm:"size:255" json:"guestName"`

	CheckInDate    string `gorm:"column:check_in_date;size:10;index" json:"checkInDate"`
	NumberOfNights int    `gorm:"column:number_of_nights;default:1" json:"numberOfNights"`

	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	AmountPaid    float64 `gorm:"column:amount_paid" json:"amountPaid"`
	PaymentMethod string  `gorm:"column:payment_method;size:32" json:"paymentMethod,omitempty"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

// AccommodationBooking is a stay sourced from an OTA platform. Same cash
// policy as walk-ins: the report counts amountPaid, not totalPrice.
type AccommodationBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomID    *uint  `gorm:"column:room_id;index" json:"roomId,omitempty"`
	GuestName string `gorm:"size:255" json:"guestName"`
	Platform  string `gorm:"size:64" json:"platform,omitempty"`

	CheckInDate    string `gorm:"column:check_in_date;size:10;index" json:"checkInDate"`
	NumberOfNights int    `gorm:"column:number_of_nights;default:1" json:"numberOfNights"`

	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`
	AmountPaid float64 `gorm:"column:amount_paid" json:"amountPaid"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
