package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/cmd/fx/analytics_fx"
	"kyotabi/cmd/fx/auth_fx"
	"kyotabi/cmd/fx/catalog_fx"
	"kyotabi/cmd/fx/controllers_fx"
	"kyotabi/cmd/fx/db_fx"
	"kyotabi/cmd/fx/favorite_fx"
	"kyotabi/cmd/fx/memcache_fx"
	"kyotabi/cmd/fx/search_fx"
	"kyotabi/cmd/fx/trip_fx"
	"kyotabi/internal/api/controllers"
	"kyotabi/internal/infra"
	"kyotabi/internal/services"
	"kyotabi/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		catalog_fx.Module,
		search_fx.Module,
		trip_fx.Module,
		favorite_fx.Module,
		analytics_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(RunMigrations),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func RunMigrations(db *gorm.DB) error {
	return infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseDatabase(db)
			return nil
		},
	})
}

func ProvideRouter(
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	searchController *controllers.SearchController,
	tripController *controllers.TripController,
	favoriteController *controllers.FavoriteController,
	analyticsController *controllers.AnalyticsController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, authService,
		authController, catalogController, searchController,
		tripController, favoriteController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authService services.AuthServiceInterface,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	searchController *controllers.SearchController,
	tripController *controllers.TripController,
	favoriteController *controllers.FavoriteController,
	analyticsController *controllers.AnalyticsController) {

	authRequired := middleware.SessionAuthMiddleware(authService)

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authRequired, authController.Logout)
	authGroup.GET("/me", authRequired, authController.Me)
	authGroup.PATCH("/me/photo", authRequired, authController.UpdatePhoto)

	r.GET("/items/:itemType/:id", catalogController.GetItem)

	restaurants := r.Group("/restaurants")
	restaurants.GET("", catalogController.ListRestaurants)
	restaurants.GET("/featured", catalogController.FeaturedRestaurants)
	restaurants.GET("/nearby", catalogController.NearbyRestaurants)
	restaurants.GET("/stations", catalogController.RestaurantStations)
	restaurants.GET("/cuisines", catalogController.RestaurantCuisines)
	restaurants.GET("/:id", catalogController.GetRestaurant)

	hotels := r.Group("/hotels")
	hotels.GET("", catalogController.ListHotels)
	hotels.GET("/featured", catalogController.FeaturedHotels)
	hotels.GET("/nearby", catalogController.NearbyHotels)
	hotels.GET("/stations", catalogController.HotelStations)
	hotels.GET("/:id", catalogController.GetHotel)

	attractions := r.Group("/attractions")
	attractions.GET("", catalogController.ListAttractions)
	attractions.GET("/featured", catalogController.FeaturedAttractions)
	attractions.GET("/nearby", catalogController.NearbyAttractions)
	attractions.GET("/categories", catalogController.AttractionCategories)
	attractions.GET("/:id", catalogController.GetAttraction)

	search := r.Group("/search", authRequired)
	search.POST("/restaurants", searchController.SearchRestaurants)
	search.GET("/history", searchController.History)
	search.GET("/popular", searchController.Popular)

	trips := r.Group("/trips", authRequired)
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.PATCH("/:tripId", tripController.UpdateTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.POST("/:tripId/items", tripController.AddItem)
	trips.GET("/:tripId/items", tripController.ListItems)
	trips.DELETE("/:tripId/items/:itemId", tripController.RemoveItem)

	favorites := r.Group("/favorites", authRequired)
	favorites.POST("/toggle", favoriteController.Toggle)
	favorites.POST("/lookup", favoriteController.Lookup)
	favorites.GET("", favoriteController.List)
	favorites.GET("/count", favoriteController.Count)
	favorites.DELETE("", favoriteController.Clear)

	analytics := r.Group("/analytics")
	analytics.GET("/hotels/summary", analyticsController.HotelSummaries)
	analytics.GET("/hotels/bookings", analyticsController.Bookings)
	analytics.GET("/hotels/trend", analyticsController.RatingTrend)
	analytics.GET("/hotels/distribution", analyticsController.RatingDistribution)
}
