package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/models/request_models"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchRestaurants godoc
// @Summary Search restaurants
// @Description Keyword plus structured filters, ANDed; results always start at page 1
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.RestaurantSearchRequest true "Search parameters"
// @Success 200 {object} response_models.SearchResponse
// @Security BearerAuth
// @Router /search/restaurants [post]
func (s *SearchController) SearchRestaurants(c *gin.Context) {
	var request request_models.RestaurantSearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := s.searchService.SearchRestaurants(c.Request.Context(), c.GetString("session_token"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Search completed")
}

// History godoc
// @Summary Recent searches for this session
// @Tags Search
// @Produce json
// @Success 200 {array} mem.SearchHistoryEntry
// @Security BearerAuth
// @Router /search/history [get]
func (s *SearchController) History(c *gin.Context) {
	utils.RespondSuccess(c, s.searchService.History(c.GetString("session_token")), "Search history fetched")
}

// Popular godoc
// @Summary Most repeated search terms for this session
// @Tags Search
// @Produce json
// @Success 200 {array} response_models.PopularSearch
// @Security BearerAuth
// @Router /search/popular [get]
func (s *SearchController) Popular(c *gin.Context) {
	utils.RespondSuccess(c, s.searchService.Popular(c.GetString("session_token")), "Popular searches fetched")
}
