package utils

import "context"

// PlannerClientInterface abstracts the generative-text provider used for
// trip generation. Implementations return the raw model text; fence
// stripping and parsing happen in the planner service.
type PlannerClientInterface interface {
	GenerateTripJSON(ctx context.Context, prompt string) (string, error)
}
