package catalog_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/services"
)

var Module = fx.Provide(services.NewCatalogService)
