package response_models

// PlannerOptionsResponse feeds the chip pickers of the generate-trip form.
type PlannerOptionsResponse struct {
	TripStyles          []string `json:"trip_styles"`
	Interests           []string `json:"interests"`
	Paces               []string `json:"paces"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}
