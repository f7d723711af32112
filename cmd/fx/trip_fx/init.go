package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

var Module = fx.Provide(
	provideTripRepository,
	provideTripService)

func provideTripRepository(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}
