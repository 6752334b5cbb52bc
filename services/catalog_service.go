package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

// CatalogService: CRUD สำหรับ catalog ทั้ง 4 ชนิด (activity / speedboat /
// taxi / extra). Reporting never mutates these; only the admin forms do.
type CatalogService struct{}

func (s CatalogService) GetActivities() ([]models.Activity, error) {
	var items []models.Activity
	err := config.DB.Find(&items).Error
	return items, err
}

func (s CatalogService) CreateActivity(a models.Activity) (models.Activity, error) {
	err := config.DB.Create(&a).Error
	return a, err
}

func (s CatalogService) UpdateActivity(a models.Activity) error {
	return config.DB.Model(&models.Activity{}).Where("id = ?", a.ID).Updates(a).Error
}

func (s CatalogService) DeleteActivity(id int) error {
	return config.DB.Delete(&models.Activity{}, id).Error
}

func (s CatalogService) GetSpeedBoatTrips() ([]models.SpeedBoatTrip, error) {
	var items []models.SpeedBoatTrip
	err := config.DB.Find(&items).Error
	return items, err
}

func (s CatalogService) CreateSpeedBoatTrip(t models.SpeedBoatTrip) (models.SpeedBoatTrip, error) {
	err := config.DB.Create(&t).Error
	return t, err
}

func (s CatalogService) UpdateSpeedBoatTrip(t models.SpeedBoatTrip) error {
	return config.DB.Model(&models.SpeedBoatTrip{}).Where("id = ?", t.ID).Updates(t).Error
}

func (s CatalogService) DeleteSpeedBoatTrip(id int) error {
	return config.DB.Delete(&models.SpeedBoatTrip{}, id).Error
}

func (s CatalogService) GetTaxiBoatOptions() ([]models.TaxiBoatOption, error) {
	var items []models.TaxiBoatOption
	err := config.DB.Find(&items).Error
	return items, err
}

func (s CatalogService) CreateTaxiBoatOption(o models.TaxiBoatOption) (models.TaxiBoatOption, error) {
	err := config.DB.Create(&o).Error
	return o, err
}

func (s CatalogService) UpdateTaxiBoatOption(o models.TaxiBoatOption) error {
	return config.DB.Model(&models.TaxiBoatOption{}).Where("id = ?", o.ID).Updates(o).Error
}

func (s CatalogService) DeleteTaxiBoatOption(id int) error {
	return config.DB.Delete(&models.TaxiBoatOption{}, id).Error
}

func (s CatalogService) GetExtras() ([]models.Extra, error) {
	var items []models.Extra
	err := config.DB.Find(&items).Error
	return items, err
}

func (s CatalogService) CreateExtra(e models.Extra) (models.Extra, error) {
	err := config.DB.Create(&e).Error
	return e, err
}

func (s CatalogService) UpdateExtra(e models.Extra) error {
	return config.DB.Model(&models.Extra{}).Where("id = ?", e.ID).Updates(e).Error
}

func (s CatalogService) DeleteExtra(id int) error {
	return config.DB.Delete(&models.Extra{}, id).Error
}
