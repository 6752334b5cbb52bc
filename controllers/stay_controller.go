package controllers

import (
	"net/http"

	"hostel-backend/models"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

var staySvc services.StayService

// ---------------------------
// Walk-in guests
// ---------------------------

func GetWalkIns(c *gin.Context) {
	guests, err := staySvc.GetWalkIns()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load walk-in guests")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

func CreateWalkIn(c *gin.Context) {
	var guest models.WalkInGuest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := staySvc.CreateWalkIn(guest)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create walk-in guest")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateWalkIn(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var guest models.WalkInGuest
	if err := c.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	guest.ID = uint(id)
	if err := staySvc.UpdateWalkIn(guest); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update walk-in guest")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

func DeleteWalkIn(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staySvc.DeleteWalkIn(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete walk-in guest")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "walk-in guest deleted")
}

// ---------------------------
// Accommodation bookings (OTA-sourced stays)
// ---------------------------

func GetAccommodationBookings(c *gin.Context) {
	bookings, err := staySvc.GetAccommodationBookings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load accommodation bookings")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func CreateAccommodationBooking(c *gin.Context) {
	var booking models.AccommodationBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := staySvc.CreateAccommodationBooking(booking)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create accommodation booking")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateAccommodationBooking(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var booking models.AccommodationBooking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	booking.ID = uint(id)
	if err := staySvc.UpdateAccommodationBooking(booking); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update accommodation booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func DeleteAccommodationBooking(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staySvc.DeleteAccommodationBooking(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete accommodation booking")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "accommodation booking deleted")
}

// ---------------------------
// Rooms & beds
// ---------------------------

func GetRooms(c *gin.Context) {
	rooms, err := staySvc.GetRooms()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := staySvc.CreateRoom(room)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateRoom(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	room.ID = uint(id)
	if err := staySvc.UpdateRoom(room); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staySvc.DeleteRoom(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room deleted")
}

func GetBeds(c *gin.Context) {
	beds, err := staySvc.GetBeds()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load beds")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, beds)
}

func CreateBed(c *gin.Context) {
	var bed models.Bed
	if err := c.ShouldBindJSON(&bed); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	created, err := staySvc.CreateBed(bed)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create bed")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, created)
}

func UpdateBed(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	var bed models.Bed
	if err := c.ShouldBindJSON(&bed); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	bed.ID = uint(id)
	if err := staySvc.UpdateBed(bed); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update bed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bed)
}

func DeleteBed(c *gin.Context) {
	id, ok := intParam(c)
	if !ok {
		return
	}
	if err := staySvc.DeleteBed(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete bed")
		return
	}
	utils.JSONMessage(c, http.StatusOK, "bed deleted")
}
