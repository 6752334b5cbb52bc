package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
	"hostel-backend/utils"
)

// StayService: walk-in and platform accommodation stays plus the room/bed
// inventory they are assigned to.
type StayService struct{}

func (s StayService) GetWalkIns() ([]models.WalkInGuest, error) {
	var guests []models.WalkInGuest
	err := config.DB.Order("check_in_date DESC").Find(&guests).Error
	return guests, err
}

func (s StayService) CreateWalkIn(g models.WalkInGuest) (models.WalkInGuest, error) {
	if g.NumberOfNights < 1 {
		g.NumberOfNights = 1
	}
	g.PricePerNight = utils.SafeMoney(g.PricePerNight)
	g.AmountPaid = utils.SafeMoney(g.AmountPaid)
	err := config.DB.Create(&g).Error
	return g, err
}

func (s StayService) UpdateWalkIn(g models.WalkInGuest) error {
	g.PricePerNight = utils.SafeMoney(g.PricePerNight)
	g.AmountPaid = utils.SafeMoney(g.AmountPaid)
	return config.DB.Model(&models.WalkInGuest{}).Where("id = ?", g.ID).Updates(g).Error
}

func (s StayService) DeleteWalkIn(id int) error {
	return config.DB.Delete(&models.WalkInGuest{}, id).Error
}

func (s StayService) GetAccommodationBookings() ([]models.AccommodationBooking, error) {
	var bookings []models.AccommodationBooking
	err := config.DB.Order("check_in_date DESC").Find(&bookings).Error
	return bookings, err
}

func (s StayService) CreateAccommodationBooking(b models.AccommodationBooking) (models.AccommodationBooking, error) {
	if b.NumberOfNights < 1 {
		b.NumberOfNights = 1
	}
	b.TotalPrice = utils.SafeMoney(b.TotalPrice)
	b.AmountPaid = utils.SafeMoney(b.AmountPaid)
	err := config.DB.Create(&b).Error
	return b, err
}

func (s StayService) UpdateAccommodationBooking(b models.AccommodationBooking) error {
	b.TotalPrice = utils.SafeMoney(b.TotalPrice)
	b.AmountPaid = utils.SafeMoney(b.AmountPaid)
	return config.DB.Model(&models.AccommodationBooking{}).Where("id = ?", b.ID).Updates(b).Error
}

func (s StayService) DeleteAccommodationBooking(id int) error {
	return config.DB.Delete(&models.AccommodationBooking{}, id).Error
}

func (s StayService) GetRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Preload("Beds").Find(&rooms).Error
	return rooms, err
}

func (s StayService) CreateRoom(room models.Room) (models.Room, error) {
	err := config.DB.Create(&room).Error
	return room, err
}

func (s StayService) UpdateRoom(room models.Room) error {
	return config.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

func (s StayService) DeleteRoom(id int) error {
	return config.DB.Delete(&models.Room{}, id).Error
}

func (s StayService) GetBeds() ([]models.Bed, error) {
	var beds []models.Bed
	err := config.DB.Find(&beds).Error
	return beds, err
}

func (s StayService) CreateBed(bed models.Bed) (models.Bed, error) {
	err := config.DB.Create(&bed).Error
	return bed, err
}

func (s StayService) UpdateBed(bed models.Bed) error {
	return config.DB.Model(&models.Bed{}).Where("id = ?", bed.ID).Updates(bed).Error
}

func (s StayService) DeleteBed(id int) error {
	return config.DB.Delete(&models.Bed{}, id).Error
}
