package models

import (
	"time"

	"gorm.io/datatypes"
)

// Item types a booking can reference. fuelCost/captainCost are only
// meaningful for internal activities and private tours; the engine does not
// enforce that, matching how records were historically written.
const (
	ItemTypeActivity    = "activity"
	ItemTypeSpeedBoat   = "speedboat"
	ItemTypePrivateTour = "private_tour"
	ItemTypeExtra       = "extra"
	ItemTypeTaxiBoat    = "taxi_boat"
)

// BookingExtra is the snapshot shape stored inside Booking.Extras. It is a
// copy taken at booking time, not a live reference into the extras catalog.
type BookingExtra struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	ItemID   uint   `gorm:"column:item_id;index" json:"itemId"`
	ItemType string `gorm:"column:item_type;size:32;index" json:"itemType"`
	ItemName string `gorm:"column:item_name;size:255" json:"itemName"`

	StaffID *uint `gorm:"column:staff_id;index" json:"staffId,omitempty"`

	// วันที่จองเก็บเป็น string "YYYY-MM-DD" เพื่อให้ filter แบบ prefix ได้
	BookingDate string `gorm:"column:booking_date;size:10;index" json:"bookingDate"`

	CustomerPrice  float64 `gorm:"column:customer_price" json:"customerPrice"`
	NumberOfPeople int     `gorm:"column:number_of_people;default:1" json:"numberOfPeople"`
	Discount       float64 `gorm:"column:discount;default:0" json:"discount"`

	Extras      datatypes.JSON `gorm:"column:extras" json:"extras,omitempty"`
	ExtrasTotal float64        `gorm:"column:extras_total;default:0" json:"extrasTotal"`

	PaymentMethod string `gorm:"column:payment_method;size:32" json:"paymentMethod,omitempty"`
	ReceiptImage  string `gorm:"column:receipt_image;size:255" json:"receiptImage,omitempty"`

	FuelCost    *float64 `gorm:"column:fuel_cost" json:"fuelCost,omitempty"`
	CaptainCost *float64 `gorm:"column:captain_cost" json:"captainCost,omitempty"`

	// ItemCost is what the hostel owes a third party (boat company or
	// external tour partner) for this booking, total across all people.
	ItemCost *float64 `gorm:"column:item_cost" json:"itemCost,omitempty"`

	// EmployeeCommission is the total commission for the selling staff
	// member (per-person rate already multiplied by numberOfPeople).
	EmployeeCommission *float64 `gorm:"column:employee_commission" json:"employeeCommission,omitempty"`

	// HostelCommission only applies to private tours.
	HostelCommission *float64 `gorm:"column:hostel_commission" json:"hostelCommission,omitempty"`

	Staff Staff `gorm:"foreignKey:StaffID;references:ID" json:"-"`
}

// GuestTotal is the customer-facing total for this booking. Discount is not
// clamped: a discount above the subtotal goes negative, same as the ledger
// the hostel has always kept.
func (b Booking) GuestTotal() float64 {
	return b.CustomerPrice + b.ExtrasTotal - b.Discount
}
