package search_fx

import (
	"go.uber.org/fx"

	"kyotabi/internal/repositories"
	"kyotabi/internal/services"
	mem "kyotabi/pkg/memcache"
)

var Module = fx.Provide(provideSearchService)

func provideSearchService(
	restaurantRepo repositories.RestaurantRepository,
	states mem.SearchStateStore,
) services.SearchServiceInterface {
	return services.NewSearchService(restaurantRepo, states)
}
