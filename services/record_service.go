package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

// RecordService: CRUD for the standalone money records feeding the report
// (POS sales, OTA bulk payments, utility costs).
type RecordService struct{}

func (s RecordService) GetExternalSales() ([]models.ExternalSale, error) {
	var sales []models.ExternalSale
	err := config.DB.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (s RecordService) CreateExternalSale(sale models.ExternalSale) (models.ExternalSale, error) {
	err := config.DB.Create(&sale).Error
	return sale, err
}

func (s RecordService) UpdateExternalSale(sale models.ExternalSale) error {
	return config.DB.Model(&models.ExternalSale{}).Where("id = ?", sale.ID).Updates(sale).Error
}

func (s RecordService) DeleteExternalSale(id int) error {
	return config.DB.Delete(&models.ExternalSale{}, id).Error
}

func (s RecordService) GetPlatformPayments() ([]models.PlatformPayment, error) {
	var payments []models.PlatformPayment
	err := config.DB.Order("date DESC").Find(&payments).Error
	return payments, err
}

func (s RecordService) CreatePlatformPayment(p models.PlatformPayment) (models.PlatformPayment, error) {
	err := config.DB.Create(&p).Error
	return p, err
}

func (s RecordService) DeletePlatformPayment(id int) error {
	return config.DB.Delete(&models.PlatformPayment{}, id).Error
}

func (s RecordService) GetUtilityRecords() ([]models.UtilityRecord, error) {
	var records []models.UtilityRecord
	err := config.DB.Order("date DESC").Find(&records).Error
	return records, err
}

func (s RecordService) CreateUtilityRecord(r models.UtilityRecord) (models.UtilityRecord, error) {
	err := config.DB.Create(&r).Error
	return r, err
}

func (s RecordService) UpdateUtilityRecord(r models.UtilityRecord) error {
	return config.DB.Model(&models.UtilityRecord{}).Where("id = ?", r.ID).Updates(r).Error
}

func (s RecordService) DeleteUtilityRecord(id int) error {
	return config.DB.Delete(&models.UtilityRecord{}, id).Error
}
