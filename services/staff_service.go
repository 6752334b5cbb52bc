package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type StaffService struct{}

func (s StaffService) GetAll() ([]models.Staff, error) {
	var staff []models.Staff
	err := config.DB.Order("name ASC").Find(&staff).Error
	return staff, err
}

func (s StaffService) GetByID(id int) (models.Staff, error) {
	var staff models.Staff
	err := config.DB.First(&staff, id).Error
	return staff, err
}

func (s StaffService) Create(staff models.Staff) (models.Staff, error) {
	err := config.DB.Create(&staff).Error
	return staff, err
}

func (s StaffService) Update(staff models.Staff) error {
	return config.DB.Model(&models.Staff{}).Where("id = ?", staff.ID).Updates(staff).Error
}

func (s StaffService) Delete(id int) error {
	return config.DB.Delete(&models.Staff{}, id).Error
}

func (s StaffService) GetSalaryAdvances() ([]models.SalaryAdvance, error) {
	var advances []models.SalaryAdvance
	err := config.DB.Order("date DESC").Find(&advances).Error
	return advances, err
}

func (s StaffService) CreateSalaryAdvance(adv models.SalaryAdvance) (models.SalaryAdvance, error) {
	err := config.DB.Create(&adv).Error
	return adv, err
}

func (s StaffService) DeleteSalaryAdvance(id int) error {
	return config.DB.Delete(&models.SalaryAdvance{}, id).Error
}

func (s StaffService) GetAbsences() ([]models.Absence, error) {
	var absences []models.Absence
	err := config.DB.Order("date DESC").Find(&absences).Error
	return absences, err
}

func (s StaffService) CreateAbsence(a models.Absence) (models.Absence, error) {
	err := config.DB.Create(&a).Error
	return a, err
}

func (s StaffService) DeleteAbsence(id int) error {
	return config.DB.Delete(&models.Absence{}, id).Error
}
