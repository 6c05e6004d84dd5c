package geo_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/services"
	mem "wayfarer/pkg/memcache"
)

var Module = fx.Provide(provideGeoService)

func provideGeoService() services.GeoServiceInterface {
	return services.NewMapboxGeoClient(mem.NewGeoPoints())
}
