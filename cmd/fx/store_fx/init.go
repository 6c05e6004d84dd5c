package store_fx

import (
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideTripRepository, provideTripService)

func provideTripRepository() repositories.TripRepository {
	return repositories.NewJSONFileTripRepository(getEnvWithDefault("TRIPS_FILE", "data/trips.json"))
}

func provideTripService(repo repositories.TripRepository) services.TripServiceInterface {
	imagesDir := getEnvWithDefault("IMAGES_DIR", "data/images")
	seedMock := os.Getenv("SEED_MOCK_TRIP") == "true"
	return services.NewTripService(repo, imagesDir, seedMock)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
