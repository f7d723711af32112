package services

import (
	"context"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

type CatalogServiceInterface interface {
	AllRestaurants(ctx context.Context) ([]response_models.RestaurantResponse, error)
	RestaurantByID(ctx context.Context, id int64) (*response_models.RestaurantResponse, error)
	FeaturedRestaurants(ctx context.Context, n int) ([]response_models.RestaurantResponse, error)
	NearbyRestaurants(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.RestaurantResponse, error)
	RestaurantStations(ctx context.Context) ([]string, error)
	RestaurantCuisines(ctx context.Context) ([]string, error)

	AllHotels(ctx context.Context) ([]response_models.HotelResponse, error)
	HotelByID(ctx context.Context, id int64) (*response_models.HotelResponse, error)
	FeaturedHotels(ctx context.Context, n int) ([]response_models.HotelResponse, error)
	NearbyHotels(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.HotelResponse, error)
	HotelStations(ctx context.Context) ([]string, error)

	AllAttractions(ctx context.Context) ([]response_models.AttractionResponse, error)
	AttractionByID(ctx context.Context, id int64) (*response_models.AttractionResponse, error)
	FeaturedAttractions(ctx context.Context, n int) ([]response_models.AttractionResponse, error)
	NearbyAttractions(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.AttractionResponse, error)
	AttractionCategories(ctx context.Context) ([]string, error)

	LookupItem(ctx context.Context, itemType db_models.ItemType, id int64) (interface{}, error)
}

const featuredMinRating = 4.0

type CatalogService struct {
	restaurantRepo repositories.RestaurantRepository
	hotelRepo      repositories.HotelRepository
	attractionRepo repositories.AttractionRepository
}

func NewCatalogService(
	restaurantRepo repositories.RestaurantRepository,
	hotelRepo repositories.HotelRepository,
	attractionRepo repositories.AttractionRepository,
) CatalogServiceInterface {
	return &CatalogService{
		restaurantRepo: restaurantRepo,
		hotelRepo:      hotelRepo,
		attractionRepo: attractionRepo,
	}
}

func toRestaurantResponse(r db_models.Restaurant) response_models.RestaurantResponse {
	return response_models.RestaurantResponse{
		ID:             r.ID,
		Name:           r.Name,
		JapaneseName:   r.JapaneseName,
		Station:        r.Station,
		FirstCategory:  r.FirstCategory,
		SecondCategory: r.SecondCategory,
		TotalRating:    r.TotalRating,
		Lat:            r.Lat,
		Long:           r.Long,
		DinnerPrice:    r.DinnerPrice,
		LunchPrice:     r.LunchPrice,
		PriceCategory:  r.PriceCategory,
		ReviewNum:      r.ReviewNum,
	}
}

func toHotelResponse(h db_models.Hotel) response_models.HotelResponse {
	return response_models.HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		JapaneseName:  h.JapaneseName,
		Station:       h.Station,
		Lat:           h.Lat,
		Long:          h.Long,
		Price:         h.Price,
		StarRating:    h.StarRating,
		TotalRating:   h.TotalRating,
		ReviewNum:     h.ReviewNum,
		PriceCategory: h.PriceCategory,
	}
}

func toAttractionResponse(a db_models.Attraction) response_models.AttractionResponse {
	return response_models.AttractionResponse{
		ID:           a.ID,
		Name:         a.Name,
		JapaneseName: a.JapaneseName,
		Category:     a.Category,
		Station:      a.Station,
		Lat:          a.Lat,
		Long:         a.Long,
		TotalRating:  a.TotalRating,
		ReviewNum:    a.ReviewNum,
		Description:  a.Description,
	}
}

func (s *CatalogService) AllRestaurants(ctx context.Context) ([]response_models.RestaurantResponse, error) {
	rows, err := s.restaurantRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.RestaurantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRestaurantResponse(r))
	}
	return out, nil
}

func (s *CatalogService) RestaurantByID(ctx context.Context, id int64) (*response_models.RestaurantResponse, error) {
	row, err := s.restaurantRepo.ByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrRestaurantNotFound
	}
	resp := toRestaurantResponse(*row)
	return &resp, nil
}

func (s *CatalogService) FeaturedRestaurants(ctx context.Context, n int) ([]response_models.RestaurantResponse, error) {
	if n <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.restaurantRepo.RandomTop(ctx, n, featuredMinRating)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.RestaurantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRestaurantResponse(r))
	}
	return out, nil
}

func (s *CatalogService) NearbyRestaurants(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.RestaurantResponse, error) {
	if radiusKM <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.restaurantRepo.Nearby(ctx, lat, lng, radiusKM)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.RestaurantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRestaurantResponse(r))
	}
	return out, nil
}

func (s *CatalogService) RestaurantStations(ctx context.Context) ([]string, error) {
	stations, err := s.restaurantRepo.UniqueStations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stations, nil
}

func (s *CatalogService) RestaurantCuisines(ctx context.Context) ([]string, error) {
	cuisines, err := s.restaurantRepo.UniqueCuisines(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return cuisines, nil
}

func (s *CatalogService) AllHotels(ctx context.Context) ([]response_models.HotelResponse, error) {
	rows, err := s.hotelRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.HotelResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHotelResponse(h))
	}
	return out, nil
}

func (s *CatalogService) HotelByID(ctx context.Context, id int64) (*response_models.HotelResponse, error) {
	row, err := s.hotelRepo.ByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrHotelNotFound
	}
	resp := toHotelResponse(*row)
	return &resp, nil
}

func (s *CatalogService) FeaturedHotels(ctx context.Context, n int) ([]response_models.HotelResponse, error) {
	if n <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.hotelRepo.RandomTop(ctx, n, featuredMinRating)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.HotelResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHotelResponse(h))
	}
	return out, nil
}

func (s *CatalogService) NearbyHotels(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.HotelResponse, error) {
	if radiusKM <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.hotelRepo.Nearby(ctx, lat, lng, radiusKM)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.HotelResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, toHotelResponse(h))
	}
	return out, nil
}

func (s *CatalogService) HotelStations(ctx context.Context) ([]string, error) {
	stations, err := s.hotelRepo.UniqueStations(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return stations, nil
}

func (s *CatalogService) AllAttractions(ctx context.Context) ([]response_models.AttractionResponse, error) {
	rows, err := s.attractionRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AttractionResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAttractionResponse(a))
	}
	return out, nil
}

func (s *CatalogService) AttractionByID(ctx context.Context, id int64) (*response_models.AttractionResponse, error) {
	row, err := s.attractionRepo.ByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrAttractionNotFound
	}
	resp := toAttractionResponse(*row)
	return &resp, nil
}

func (s *CatalogService) FeaturedAttractions(ctx context.Context, n int) ([]response_models.AttractionResponse, error) {
	if n <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.attractionRepo.RandomTop(ctx, n, featuredMinRating)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AttractionResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAttractionResponse(a))
	}
	return out, nil
}

func (s *CatalogService) NearbyAttractions(ctx context.Context, lat, lng, radiusKM float64) ([]response_models.AttractionResponse, error) {
	if radiusKM <= 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.attractionRepo.Nearby(ctx, lat, lng, radiusKM)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AttractionResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAttractionResponse(a))
	}
	return out, nil
}

func (s *CatalogService) AttractionCategories(ctx context.Context) ([]string, error) {
	categories, err := s.attractionRepo.UniqueCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

// LookupItem is the one place an item-type tag fans out to a catalog lookup.
func (s *CatalogService) LookupItem(ctx context.Context, itemType db_models.ItemType, id int64) (interface{}, error) {
	switch itemType {
	case db_models.ItemTypeRestaurant:
		return s.RestaurantByID(ctx, id)
	case db_models.ItemTypeHotel:
		return s.HotelByID(ctx, id)
	case db_models.ItemTypeAttraction:
		return s.AttractionByID(ctx, id)
	default:
		return nil, utils.ErrInvalidItemType
	}
}
