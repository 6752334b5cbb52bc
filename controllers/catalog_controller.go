package controllers

import (
	"net/http"
	"strconv"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var catalogSvc services.CatalogService

func intParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// ---------------------------
// Activities
// ---------------------------

func GetActivities(c *gin.Context) {
	items, err := catalogSvc.GetActivities()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load activities")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateActivity(c *gin.Context) {
	var a models.Activity
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := catalogSvc.CreateActivity(a)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create activity")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateActivity(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var a models.Activity
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	a.ID = uint(id)
	if err := catalogSvc.UpdateActivity(a); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update activity")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, a)
}

func DeleteActivity(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := catalogSvc.DeleteActivity(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete activity")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "activity deleted")
}

// ---------------------------
// Speedboat trips
// ---------------------------

func GetSpeedBoatTrips(c *gin.Context) {
	items, err := catalogSvc.GetSpeedBoatTrips()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load speedboat trips")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateSpeedBoatTrip(c *gin.Context) {
	var t models.SpeedBoatTrip
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := catalogSvc.CreateSpeedBoatTrip(t)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create speedboat trip")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateSpeedBoatTrip(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var t models.SpeedBoatTrip
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	t.ID = uint(id)
	if err := catalogSvc.UpdateSpeedBoatTrip(t); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update speedboat trip")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, t)
}

func DeleteSpeedBoatTrip(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := catalogSvc.DeleteSpeedBoatTrip(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete speedboat trip")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "speedboat trip deleted")
}

// ---------------------------
// Taxi boat options
// ---------------------------

func GetTaxiBoatOptions(c *gin.Context) {
	items, err := catalogSvc.GetTaxiBoatOptions()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load taxi options")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateTaxiBoatOption(c *gin.Context) {
	var o models.TaxiBoatOption
	if err := c.ShouldBindJSON(&o); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := catalogSvc.CreateTaxiBoatOption(o)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create taxi option")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateTaxiBoatOption(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var o models.TaxiBoatOption
	if err := c.ShouldBindJSON(&o); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	o.ID = uint(id)
	if err := catalogSvc.UpdateTaxiBoatOption(o); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update taxi option")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, o)
}

func DeleteTaxiBoatOption(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := catalogSvc.DeleteTaxiBoatOption(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete taxi option")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "taxi option deleted")
}

// ---------------------------
// Extras
// ---------------------------

func GetExtras(c *gin.Context) {
	items, err := catalogSvc.GetExtras()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load extras")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func CreateExtra(c *gin.Context) {
	var e models.Extra
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := catalogSvc.CreateExtra(e)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create extra")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateExtra(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var e models.Extra
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	e.ID = uint(id)
	if err := catalogSvc.UpdateExtra(e); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update extra")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}

func DeleteExtra(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := catalogSvc.DeleteExtra(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete extra")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "extra deleted")
}
