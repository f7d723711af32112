package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

type AnalyticsController struct {
	analyticsService services.AnalyticsServiceInterface
}

func NewAnalyticsController(analyticsService services.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

func analyticsParams(c *gin.Context) (hotelID *int64, from, to *time.Time, ok bool) {
	if raw := c.Query("hotel_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid hotel_id")
			return nil, nil, nil, false
		}
		hotelID = &id
	}
	if raw := c.Query("from"); raw != "" {
		t, err := utils.ParseDateJST(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return nil, nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := utils.ParseDateJST(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return nil, nil, nil, false
		}
		to = &t
	}
	return hotelID, from, to, true
}

// HotelSummaries godoc
// @Summary Booking and review summary per hotel
// @Description Average confirmed price, cancellation rate and negative review share; null fields mean no data
// @Tags Analytics
// @Produce json
// @Success 200 {array} response_models.HotelSummary
// @Router /analytics/hotels/summary [get]
func (a *AnalyticsController) HotelSummaries(c *gin.Context) {
	summaries, err := a.analyticsService.HotelSummaries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summaries, "Hotel summaries fetched successfully")
}

// Bookings godoc
// @Summary Booking history, optionally for one hotel
// @Tags Analytics
// @Produce json
// @Param hotel_id query int false "Limit to one hotel"
// @Success 200 {array} response_models.BookingResponse
// @Router /analytics/hotels/bookings [get]
func (a *AnalyticsController) Bookings(c *gin.Context) {
	hotelID, _, _, ok := analyticsParams(c)
	if !ok {
		return
	}
	bookings, err := a.analyticsService.BookingHistory(c.Request.Context(), hotelID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Booking history fetched successfully")
}

// RatingTrend godoc
// @Summary Review ratings over time with a rolling average
// @Tags Analytics
// @Produce json
// @Param hotel_id query int false "Limit to one hotel"
// @Param from query string false "Start date, YYYY-MM-DD"
// @Param to query string false "End date, YYYY-MM-DD"
// @Success 200 {array} response_models.TrendPoint
// @Failure 404 {object} utils.APIResponse
// @Router /analytics/hotels/trend [get]
func (a *AnalyticsController) RatingTrend(c *gin.Context) {
	hotelID, from, to, ok := analyticsParams(c)
	if !ok {
		return
	}
	trend, err := a.analyticsService.RatingTrend(c.Request.Context(), hotelID, from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trend, "Rating trend fetched successfully")
}

// RatingDistribution godoc
// @Summary Review counts per 1-5 rating bucket
// @Tags Analytics
// @Produce json
// @Param hotel_id query int false "Limit to one hotel"
// @Param from query string false "Start date, YYYY-MM-DD"
// @Param to query string false "End date, YYYY-MM-DD"
// @Success 200 {array} response_models.RatingBucket
// @Failure 404 {object} utils.APIResponse
// @Router /analytics/hotels/distribution [get]
func (a *AnalyticsController) RatingDistribution(c *gin.Context) {
	hotelID, from, to, ok := analyticsParams(c)
	if !ok {
		return
	}
	distribution, err := a.analyticsService.RatingDistribution(c.Request.Context(), hotelID, from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, distribution, "Rating distribution fetched successfully")
}
