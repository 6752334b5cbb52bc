package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hostel-backend/models"
	"hostel-backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService เป็น wrapper รอบ *gorm.DB สำหรับ logic ของ booking
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput is what the booking form submits. For private tours
// there is no catalog entry, so the money fields come in manually.
type CreateBookingInput struct {
	ItemType       string                `json:"itemType"`
	ItemID         uint                  `json:"itemId"`
	StaffID        *uint                 `json:"staffId"`
	BookingDate    string                `json:"bookingDate"`
	NumberOfPeople int                   `json:"numberOfPeople"`
	Discount       float64               `json:"discount"`
	Extras         []models.BookingExtra `json:"extras"`
	PaymentMethod  string                `json:"paymentMethod"`
	ReceiptImage   string                `json:"receiptImage"` // base64, optional

	// manual pricing, used only when itemType = private_tour
	ItemName           string   `json:"itemName"`
	CustomerPrice      float64  `json:"customerPrice"`
	ItemCost           *float64 `json:"itemCost"`
	EmployeeCommission *float64 `json:"employeeCommission"`
	HostelCommission   *float64 `json:"hostelCommission"`
	FuelCost           *float64 `json:"fuelCost"`
	CaptainCost        *float64 `json:"captainCost"`
}

// UpdateBookingInput carries an edit. ItemID/NumberOfPeople trigger pricing
// re-derivation; the other fields are applied as-is.
type UpdateBookingInput struct {
	ItemID         *uint                  `json:"itemId"`
	NumberOfPeople *int                   `json:"numberOfPeople"`
	StaffID        *uint                  `json:"staffId"`
	BookingDate    *string                `json:"bookingDate"`
	Discount       *float64               `json:"discount"`
	Extras         *[]models.BookingExtra `json:"extras"`
	PaymentMethod  *string                `json:"paymentMethod"`
	FuelCost       *float64               `json:"fuelCost"`
	CaptainCost    *float64               `json:"captainCost"`
}

func validItemType(t string) bool {
	switch t {
	case models.ItemTypeActivity, models.ItemTypeSpeedBoat, models.ItemTypePrivateTour,
		models.ItemTypeExtra, models.ItemTypeTaxiBoat:
		return true
	}
	return false
}

// LoadCatalog fetches the current catalog collections for the resolver.
func (s *BookingService) LoadCatalog() (Catalog, error) {
	var catalog Catalog
	if err := s.DB.Find(&catalog.Activities).Error; err != nil {
		return Catalog{}, fmt.Errorf("load activities: %w", err)
	}
	if err := s.DB.Find(&catalog.SpeedBoatTrips).Error; err != nil {
		return Catalog{}, fmt.Errorf("load speedboat trips: %w", err)
	}
	if err := s.DB.Find(&catalog.TaxiBoatOptions).Error; err != nil {
		return Catalog{}, fmt.Errorf("load taxi options: %w", err)
	}
	if err := s.DB.Find(&catalog.Extras).Error; err != nil {
		return Catalog{}, fmt.Errorf("load extras: %w", err)
	}
	return catalog, nil
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Order("booking_date DESC, id DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, errors.New("booking_not_found")
		}
		return models.Booking{}, fmt.Errorf("failed to find booking: %w", err)
	}
	return booking, nil
}

func (s *BookingService) Create(input CreateBookingInput) (models.Booking, error) {
	if !validItemType(input.ItemType) {
		return models.Booking{}, errors.New("invalid_item_type")
	}
	if input.NumberOfPeople < 1 {
		input.NumberOfPeople = 1
	}

	booking := models.Booking{
		ReferenceCode:  newReferenceCode(),
		ItemType:       input.ItemType,
		StaffID:        input.StaffID,
		BookingDate:    strings.TrimSpace(input.BookingDate),
		NumberOfPeople: input.NumberOfPeople,
		Discount:       utils.SafeMoney(input.Discount),
		PaymentMethod:  input.PaymentMethod,
	}

	if input.ItemType == models.ItemTypePrivateTour {
		// ทัวร์ส่วนตัวไม่มี catalog ให้คิดราคา -> ใช้ค่าที่กรอกมา
		booking.ItemName = input.ItemName
		booking.CustomerPrice = utils.SafeMoney(input.CustomerPrice)
		booking.ItemCost = safeMoneyPtr(input.ItemCost)
		booking.EmployeeCommission = safeMoneyPtr(input.EmployeeCommission)
		booking.HostelCommission = safeMoneyPtr(input.HostelCommission)
		booking.FuelCost = safeMoneyPtr(input.FuelCost)
		booking.CaptainCost = safeMoneyPtr(input.CaptainCost)
	} else {
		catalog, err := s.LoadCatalog()
		if err != nil {
			return models.Booking{}, err
		}
		rp, ok := ResolveItemPricing(input.ItemType, catalog, input.ItemID, input.NumberOfPeople)
		if !ok {
			return models.Booking{}, errors.New("item_not_found")
		}
		booking.ItemID = input.ItemID
		booking.ItemName = rp.ItemName
		booking.CustomerPrice = rp.CustomerPrice
		booking.ItemCost = rp.ItemCost
		commission := rp.EmployeeCommission
		booking.EmployeeCommission = &commission
		booking.FuelCost = safeMoneyPtr(input.FuelCost)
		booking.CaptainCost = safeMoneyPtr(input.CaptainCost)
	}

	if err := applyExtras(&booking, input.Extras); err != nil {
		return models.Booking{}, err
	}

	if strings.TrimSpace(input.ReceiptImage) != "" {
		path, err := SaveBase64Image(input.ReceiptImage, "receipts")
		if err != nil {
			return models.Booking{}, fmt.Errorf("save receipt image: %w", err)
		}
		booking.ReceiptImage = path
	}

	if err := s.DB.Create(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// Update applies an edit. When the item reference or quantity changes the
// money fields are re-derived from the live catalog so the stored record
// never goes stale; if the referenced entry no longer exists the existing
// values are kept untouched.
func (s *BookingService) Update(id uint, input UpdateBookingInput) (models.Booking, error) {
	booking, err := s.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}

	if input.BookingDate != nil {
		booking.BookingDate = strings.TrimSpace(*input.BookingDate)
	}
	if input.StaffID != nil {
		booking.StaffID = input.StaffID
	}
	if input.Discount != nil {
		booking.Discount = utils.SafeMoney(*input.Discount)
	}
	if input.PaymentMethod != nil {
		booking.PaymentMethod = *input.PaymentMethod
	}
	if input.FuelCost != nil {
		booking.FuelCost = safeMoneyPtr(input.FuelCost)
	}
	if input.CaptainCost != nil {
		booking.CaptainCost = safeMoneyPtr(input.CaptainCost)
	}
	if input.Extras != nil {
		if err := applyExtras(&booking, *input.Extras); err != nil {
			return models.Booking{}, err
		}
	}

	newItemID := booking.ItemID
	if input.ItemID != nil {
		newItemID = *input.ItemID
	}
	newQuantity := booking.NumberOfPeople
	if input.NumberOfPeople != nil && *input.NumberOfPeople > 0 {
		newQuantity = *input.NumberOfPeople
	}
	if newItemID != booking.ItemID || newQuantity != booking.NumberOfPeople {
		catalog, cErr := s.LoadCatalog()
		if cErr != nil {
			return models.Booking{}, cErr
		}
		booking = ResolveBookingEdit(booking, newItemID, newQuantity, catalog)
	}

	if err := s.DB.Save(&booking).Error; err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// Delete removes the booking outright. No soft delete for sales records.
func (s *BookingService) Delete(id uint) error {
	result := s.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("booking_not_found")
	}
	return nil
}

// applyExtras stores the {name, price} snapshot and keeps extrasTotal in
// sync with it.
func applyExtras(booking *models.Booking, extras []models.BookingExtra) error {
	if extras == nil {
		extras = []models.BookingExtra{}
	}
	var total float64
	for i := range extras {
		extras[i].Price = utils.SafeMoney(extras[i].Price)
		total += extras[i].Price
	}
	raw, err := json.Marshal(extras)
	if err != nil {
		return fmt.Errorf("marshal extras: %w", err)
	}
	booking.Extras = datatypes.JSON(raw)
	booking.ExtrasTotal = total
	return nil
}

func safeMoneyPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := utils.SafeMoney(*p)
	return &v
}

// newReferenceCode เช่น "BK-9F3A27C1"
func newReferenceCode() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id, "-", ""))[:8]
}
