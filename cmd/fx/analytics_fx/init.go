package analytics_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

var Module = fx.Provide(
	provideReviewRepository,
	provideBookingRepository,
	provideAnalyticsService)

func provideReviewRepository(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideBookingRepository(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideAnalyticsService(
	hotelRepo repositories.HotelRepository,
	bookingRepo repositories.BookingRepository,
	reviewRepo repositories.ReviewRepository,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(hotelRepo, bookingRepo, reviewRepo)
}
