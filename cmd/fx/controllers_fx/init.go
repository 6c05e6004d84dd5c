package controllers_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewPhotosController),
	fx.Provide(controllers.NewGeoController),
	fx.Provide(controllers.NewCatalogController))
