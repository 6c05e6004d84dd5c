package services

import (
	"context"

	"wayfarer/internal/models/response_models"
)

type CatalogServiceInterface interface {
	GetPlannerOptions(ctx context.Context) (*response_models.PlannerOptionsResponse, error)
}

// CatalogService serves the fixed vocabulary behind the generate-trip
// form's chip pickers.
type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

var (
	tripStyles = []string{
		"relaxation", "adventure", "culture", "nightlife", "nature", "roadtrip",
	}
	interests = []string{
		"food", "history", "art", "museums", "hiking", "shopping", "beaches", "photography",
	}
	paces = []string{
		"relaxed", "balanced", "packed",
	}
	dietaryRestrictions = []string{
		"vegetarian", "vegan", "gluten-free", "halal", "kosher", "lactose-free",
	}
)

func (c *CatalogService) GetPlannerOptions(ctx context.Context) (*response_models.PlannerOptionsResponse, error) {
	return &response_models.PlannerOptionsResponse{
		TripStyles:          tripStyles,
		Interests:           interests,
		Paces:               paces,
		DietaryRestrictions: dietaryRestrictions,
	}, nil
}
