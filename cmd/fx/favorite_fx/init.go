package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepository,
	provideFavoriteService)

func provideFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo)
}
