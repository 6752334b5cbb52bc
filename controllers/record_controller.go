package controllers

import (
	"net/http"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var recordSvc services.RecordService

// ---------------------------
// External sales (POS)
// ---------------------------

// externalSaleInput: the POS export sends amounts as text ("1,500.00"
// included), so the amount is parsed here instead of bound as a number.
type externalSaleInput struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func (in externalSaleInput) toModel() models.ExternalSale {
	return models.ExternalSale{
		Date:        in.Date,
		Amount:      utils.ParseMoney(in.Amount),
		Description: in.Description,
	}
}

func GetExternalSales(c *gin.Context) {
	sales, err := recordSvc.GetExternalSales()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load external sales")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sales)
}

func CreateExternalSale(c *gin.Context) {
	var input externalSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := recordSvc.CreateExternalSale(input.toModel())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create external sale")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateExternalSale(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var input externalSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	sale := input.toModel()
	sale.ID = uint(id)
	if err := recordSvc.UpdateExternalSale(sale); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update external sale")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sale)
}

func DeleteExternalSale(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := recordSvc.DeleteExternalSale(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete external sale")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "external sale deleted")
}

// ---------------------------
// Platform payments (OTA settlements)
// ---------------------------

func GetPlatformPayments(c *gin.Context) {
	payments, err := recordSvc.GetPlatformPayments()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load platform payments")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

func CreatePlatformPayment(c *gin.Context) {
	var payment models.PlatformPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	payment.Amount = utils.SafeMoney(payment.Amount)
	created, err := recordSvc.CreatePlatformPayment(payment)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create platform payment")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func DeletePlatformPayment(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := recordSvc.DeletePlatformPayment(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete platform payment")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "platform payment deleted")
}

// ---------------------------
// Utility records
// ---------------------------

func GetUtilityRecords(c *gin.Context) {
	records, err := recordSvc.GetUtilityRecords()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load utility records")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, records)
}

func CreateUtilityRecord(c *gin.Context) {
	var record models.UtilityRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	record.Cost = utils.SafeMoney(record.Cost)
	created, err := recordSvc.CreateUtilityRecord(record)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create utility record")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateUtilityRecord(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var record models.UtilityRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	record.ID = uint(id)
	record.Cost = utils.SafeMoney(record.Cost)
	if err := recordSvc.UpdateUtilityRecord(record); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update utility record")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, record)
}

func DeleteUtilityRecord(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := recordSvc.DeleteUtilityRecord(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete utility record")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "utility record deleted")
}
