package request_models

// GenerateTripRequest carries the preference form the mobile client
// collects before asking for an AI-generated itinerary.
type GenerateTripRequest struct {
	Country             string   `json:"country" binding:"required"`
	Cities              []string `json:"cities"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	TripStyle           []string `json:"trip_style"`
	Interests           []string `json:"interests"`
	Pace                string   `json:"pace"`
	BudgetPerDay        int      `json:"budget_per_day"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	AccessibilityNeeds  string   `json:"accessibility_needs"`
}
