package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// optionalItemType reads the item_type query param if present.
func optionalItemType(c *gin.Context) *db_models.ItemType {
	raw := c.Query("item_type")
	if raw == "" {
		return nil
	}
	itemType := db_models.ItemType(raw)
	return &itemType
}

// Toggle godoc
// @Summary Toggle a favorite
// @Description Adds the item if absent, removes it if present
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.ToggleFavoriteRequest true "Item reference and optional metadata"
// @Success 200 {object} response_models.ToggleFavoriteResponse
// @Security BearerAuth
// @Router /favorites/toggle [post]
func (f *FavoriteController) Toggle(c *gin.Context) {
	var request request_models.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := f.favoriteService.ToggleFavorite(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, result.Message)
}

// Lookup godoc
// @Summary Favorite state for a batch of items
// @Description Returns item_id to favorited mapping for badging result lists
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.FavoriteLookupRequest true "Item type and ids"
// @Success 200 {object} map[int64]bool
// @Security BearerAuth
// @Router /favorites/lookup [post]
func (f *FavoriteController) Lookup(c *gin.Context) {
	var request request_models.FavoriteLookupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := f.favoriteService.GetFavoritesByIDs(c.Request.Context(), c.GetString("user_id"),
		db_models.ItemType(request.ItemType), request.ItemIDs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Favorite states fetched successfully")
}

// List godoc
// @Summary List the caller's favorites, newest first
// @Tags Favorites
// @Produce json
// @Param item_type query string false "Filter by item type" Enums(restaurant, hotel, attraction)
// @Success 200 {array} response_models.FavoriteResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) List(c *gin.Context) {
	favorites, err := f.favoriteService.GetUserFavorites(c.Request.Context(), c.GetString("user_id"), optionalItemType(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, favorites, "Favorites fetched successfully")
}

// Count godoc
// @Summary Favorite counts per item type
// @Tags Favorites
// @Produce json
// @Success 200 {object} repositories.FavoriteCounts
// @Security BearerAuth
// @Router /favorites/count [get]
func (f *FavoriteController) Count(c *gin.Context) {
	counts, err := f.favoriteService.GetFavoritesCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, counts, "Favorite counts fetched successfully")
}

// Clear godoc
// @Summary Remove all favorites, optionally one type only
// @Tags Favorites
// @Produce json
// @Param item_type query string false "Only clear this type" Enums(restaurant, hotel, attraction)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [delete]
func (f *FavoriteController) Clear(c *gin.Context) {
	cleared, err := f.favoriteService.ClearUserFavorites(c.Request.Context(), c.GetString("user_id"), optionalItemType(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"cleared": cleared}, "Favorites cleared")
}
