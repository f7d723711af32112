package controllers_fx

import (
	"go.uber.org/fx"

	"kyotabi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewAnalyticsController))
