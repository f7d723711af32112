package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/services"
	"kyotabi/pkg/utils"
)

const (
	defaultFeaturedCount = 6
	defaultRadiusKM      = 2.0
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func featuredCount(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultFeaturedCount)))
	if err != nil || n <= 0 {
		return defaultFeaturedCount
	}
	return n
}

func nearbyParams(c *gin.Context) (lat, lng, radius float64, ok bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng are required")
		return 0, 0, 0, false
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius_km", "0"), 64)
	if err != nil || radius <= 0 {
		radius = defaultRadiusKM
	}
	return lat, lng, radius, true
}

// GetItem godoc
// @Summary Get any catalog item by type tag and id
// @Description Single dispatch point for restaurant, hotel and attraction lookups
// @Tags Catalog
// @Produce json
// @Param itemType path string true "Item type" Enums(restaurant, hotel, attraction)
// @Param id path int true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /items/{itemType}/{id} [get]
func (ct *CatalogController) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := ct.catalogService.LookupItem(c.Request.Context(), db_models.ItemType(c.Param("itemType")), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Item fetched successfully")
}

// ListRestaurants godoc
// @Summary List all restaurants
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.RestaurantResponse
// @Router /restaurants [get]
func (ct *CatalogController) ListRestaurants(c *gin.Context) {
	rows, err := ct.catalogService.AllRestaurants(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Restaurants fetched successfully")
}

// GetRestaurant godoc
// @Summary Get a restaurant by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} response_models.RestaurantResponse
// @Failure 404 {object} utils.APIResponse
// @Router /restaurants/{id} [get]
func (ct *CatalogController) GetRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := ct.catalogService.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, row, "Restaurant fetched successfully")
}

// FeaturedRestaurants godoc
// @Summary Random selection of highly rated restaurants
// @Tags Catalog
// @Produce json
// @Param count query int false "How many to return" default(6)
// @Success 200 {array} response_models.RestaurantResponse
// @Router /restaurants/featured [get]
func (ct *CatalogController) FeaturedRestaurants(c *gin.Context) {
	rows, err := ct.catalogService.FeaturedRestaurants(c.Request.Context(), featuredCount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Featured restaurants fetched successfully")
}

// NearbyRestaurants godoc
// @Summary Restaurants within a radius of a point
// @Tags Catalog
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km" default(2)
// @Success 200 {array} response_models.RestaurantResponse
// @Router /restaurants/nearby [get]
func (ct *CatalogController) NearbyRestaurants(c *gin.Context) {
	lat, lng, radius, ok := nearbyParams(c)
	if !ok {
		return
	}
	rows, err := ct.catalogService.NearbyRestaurants(c.Request.Context(), lat, lng, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Nearby restaurants fetched successfully")
}

// RestaurantStations godoc
// @Summary Distinct stations with at least one restaurant
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /restaurants/stations [get]
func (ct *CatalogController) RestaurantStations(c *gin.Context) {
	stations, err := ct.catalogService.RestaurantStations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stations, "Stations fetched successfully")
}

// RestaurantCuisines godoc
// @Summary Distinct cuisine categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /restaurants/cuisines [get]
func (ct *CatalogController) RestaurantCuisines(c *gin.Context) {
	cuisines, err := ct.catalogService.RestaurantCuisines(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cuisines, "Cuisines fetched successfully")
}

// ListHotels godoc
// @Summary List all hotels
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.HotelResponse
// @Router /hotels [get]
func (ct *CatalogController) ListHotels(c *gin.Context) {
	rows, err := ct.catalogService.AllHotels(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Hotels fetched successfully")
}

// GetHotel godoc
// @Summary Get a hotel by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} response_models.HotelResponse
// @Failure 404 {object} utils.APIResponse
// @Router /hotels/{id} [get]
func (ct *CatalogController) GetHotel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := ct.catalogService.HotelByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, row, "Hotel fetched successfully")
}

// FeaturedHotels godoc
// @Summary Random selection of highly rated hotels
// @Tags Catalog
// @Produce json
// @Param count query int false "How many to return" default(6)
// @Success 200 {array} response_models.HotelResponse
// @Router /hotels/featured [get]
func (ct *CatalogController) FeaturedHotels(c *gin.Context) {
	rows, err := ct.catalogService.FeaturedHotels(c.Request.Context(), featuredCount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Featured hotels fetched successfully")
}

// NearbyHotels godoc
// @Summary Hotels within a radius of a point
// @Tags Catalog
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km" default(2)
// @Success 200 {array} response_models.HotelResponse
// @Router /hotels/nearby [get]
func (ct *CatalogController) NearbyHotels(c *gin.Context) {
	lat, lng, radius, ok := nearbyParams(c)
	if !ok {
		return
	}
	rows, err := ct.catalogService.NearbyHotels(c.Request.Context(), lat, lng, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Nearby hotels fetched successfully")
}

// HotelStations godoc
// @Summary Distinct stations with at least one hotel
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /hotels/stations [get]
func (ct *CatalogController) HotelStations(c *gin.Context) {
	stations, err := ct.catalogService.HotelStations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stations, "Stations fetched successfully")
}

// ListAttractions godoc
// @Summary List all attractions
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.AttractionResponse
// @Router /attractions [get]
func (ct *CatalogController) ListAttractions(c *gin.Context) {
	rows, err := ct.catalogService.AllAttractions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Attractions fetched successfully")
}

// GetAttraction godoc
// @Summary Get an attraction by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Attraction ID"
// @Success 200 {object} response_models.AttractionResponse
// @Failure 404 {object} utils.APIResponse
// @Router /attractions/{id} [get]
func (ct *CatalogController) GetAttraction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := ct.catalogService.AttractionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, row, "Attraction fetched successfully")
}

// FeaturedAttractions godoc
// @Summary Random selection of highly rated attractions
// @Tags Catalog
// @Produce json
// @Param count query int false "How many to return" default(6)
// @Success 200 {array} response_models.AttractionResponse
// @Router /attractions/featured [get]
func (ct *CatalogController) FeaturedAttractions(c *gin.Context) {
	rows, err := ct.catalogService.FeaturedAttractions(c.Request.Context(), featuredCount(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Featured attractions fetched successfully")
}

// NearbyAttractions godoc
// @Summary Attractions within a radius of a point
// @Tags Catalog
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in km" default(2)
// @Success 200 {array} response_models.AttractionResponse
// @Router /attractions/nearby [get]
func (ct *CatalogController) NearbyAttractions(c *gin.Context) {
	lat, lng, radius, ok := nearbyParams(c)
	if !ok {
		return
	}
	rows, err := ct.catalogService.NearbyAttractions(c.Request.Context(), lat, lng, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Nearby attractions fetched successfully")
}

// AttractionCategories godoc
// @Summary Distinct attraction categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} string
// @Router /attractions/categories [get]
func (ct *CatalogController) AttractionCategories(c *gin.Context) {
	categories, err := ct.catalogService.AttractionCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}
