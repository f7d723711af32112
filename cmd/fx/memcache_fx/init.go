package memcache_fx

import (
	"go.uber.org/fx"

	mem "kyotabi/pkg/memcache"
)

var Module = fx.Provide(provideSearchStates)

func provideSearchStates() mem.SearchStateStore {
	return mem.NewSearchStates()
}
