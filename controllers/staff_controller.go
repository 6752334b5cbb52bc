package controllers

import (
	"net/http"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var staffSvc services.StaffService

func GetStaff(c *gin.Context) {
	staff, err := staffSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func GetStaffByID(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	staff, err := staffSvc.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "staff not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func CreateStaff(c *gin.Context) {
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	staff.Salary = utils.SafeMoney(staff.Salary)
	created, err := staffSvc.Create(staff)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create staff")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateStaff(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var staff models.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	staff.ID = uint(id)
	staff.Salary = utils.SafeMoney(staff.Salary)
	if err := staffSvc.Update(staff); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update staff")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

func DeleteStaff(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staffSvc.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "staff deleted")
}

// ---------------------------
// Salary advances
// ---------------------------

func GetSalaryAdvances(c *gin.Context) {
	advances, err := staffSvc.GetSalaryAdvances()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load salary advances")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, advances)
}

func CreateSalaryAdvance(c *gin.Context) {
	var adv models.SalaryAdvance
	if err := c.ShouldBindJSON(&adv); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	adv.Amount = utils.SafeMoney(adv.Amount)
	created, err := staffSvc.CreateSalaryAdvance(adv)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create salary advance")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func DeleteSalaryAdvance(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staffSvc.DeleteSalaryAdvance(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete salary advance")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "salary advance deleted")
}

// ---------------------------
// Absences
// ---------------------------

func GetAbsences(c *gin.Context) {
	absences, err := staffSvc.GetAbsences()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load absences")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, absences)
}

func CreateAbsence(c *gin.Context) {
	var a models.Absence
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := staffSvc.CreateAbsence(a)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create absence")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func DeleteAbsence(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staffSvc.DeleteAbsence(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete absence")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "absence deleted")
}
