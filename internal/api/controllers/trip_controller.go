package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/models/request_models"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Name, date range, optional description"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var request request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created successfully")
}

// ListTrips godoc
// @Summary List the caller's trips
// @Tags Trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.GetUserTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get one trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTripByID(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// UpdateTrip godoc
// @Summary Update trip fields
// @Description Only provided fields change; the date range is re-validated
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to update"
// @Success 200 {object} response_models.TripResponse
// @Security BearerAuth
// @Router /trips/{tripId} [patch]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var request request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip and all its items
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// AddItem godoc
// @Summary Add an item to a trip day
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddTripItemRequest true "Item reference and day"
// @Success 201 {object} response_models.TripItemResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/items [post]
func (t *TripController) AddItem(c *gin.Context) {
	var request request_models.AddTripItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	item, err := t.tripService.AddItemToTrip(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, item, "Item added to trip")
}

// ListItems godoc
// @Summary List a trip's items in day and slot order
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {array} response_models.TripItemResponse
// @Security BearerAuth
// @Router /trips/{tripId}/items [get]
func (t *TripController) ListItems(c *gin.Context) {
	items, err := t.tripService.GetTripItems(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Trip items fetched successfully")
}

// RemoveItem godoc
// @Summary Remove one item from a trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param itemId path string true "Trip item ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/items/{itemId} [delete]
func (t *TripController) RemoveItem(c *gin.Context) {
	if err := t.tripService.RemoveItemFromTrip(c.Request.Context(), c.GetString("user_id"), c.Param("itemId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Item removed from trip")
}
