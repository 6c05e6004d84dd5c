// cmd/fx/planner_fx/init.go
package planner_fx

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/fx"

	"wayfarer/internal/services"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	ProvidePlannerService)

// PlannerConfig holds configuration for the generative-text provider.
type PlannerConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvidePlannerClient picks the provider from the environment. Gemini
// is the default; OpenAI is the alternative.
func ProvidePlannerClient() (utils.PlannerClientInterface, error) {
	config := getPlannerConfig()

	logger.GetLogger().Infow("initializing planner client", "provider", config.Provider, "model", config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIPlannerClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiPlannerClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func ProvidePlannerService(client utils.PlannerClientInterface, trips services.TripServiceInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client, trips)
}

func getPlannerConfig() PlannerConfig {
	provider := getEnvWithDefault("PLANNER_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "")
		if apiKey == "" {
			logger.GetLogger().Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			logger.GetLogger().Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return PlannerConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
