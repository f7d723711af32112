package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

var Module = fx.Provide(
	provideRestaurantRepository,
	provideHotelRepository,
	provideAttractionRepository,
	provideCatalogService)

func provideRestaurantRepository(db *gorm.DB) repositories.RestaurantRepository {
	return repositories.NewRestaurantRepository(db)
}

func provideHotelRepository(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideAttractionRepository(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideCatalogService(
	restaurantRepo repositories.RestaurantRepository,
	hotelRepo repositories.HotelRepository,
	attractionRepo repositories.AttractionRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(restaurantRepo, hotelRepo, attractionRepo)
}
