package photos_fx

import (
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/services"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/pexels"
)

var Module = fx.Provide(providePexelsClient, providePhotoService)

func providePexelsClient() pexels.ClientInterface {
	apiKey := os.Getenv("PEXELS_API_KEY")
	if apiKey == "" {
		logger.GetLogger().Fatal("PEXELS_API_KEY is empty")
	}
	return pexels.NewClient(apiKey)
}

func providePhotoService(client pexels.ClientInterface) services.PhotoServiceInterface {
	return services.NewPhotoService(client)
}
