package response_models

import (
	"wayfarer/internal/models/entities"
	"wayfarer/pkg/utils"
)

type TripResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	StartDate      string             `json:"start_date"`
	EndDate        string             `json:"end_date"`
	Country        string             `json:"country"`
	ImageURL       string             `json:"image_url,omitempty"`
	LocalImagePath string             `json:"local_image_path,omitempty"`
	Mock           bool               `json:"mock,omitempty"`
	AIGenerated    bool               `json:"ai_generated,omitempty"`
	Activities     []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	MealType    string `json:"meal_type,omitempty"`
}

func BuildActivityResponse(a entities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		Date:        utils.FormatRFC3339(a.Date),
		Location:    a.Location,
		Type:        string(a.Type),
		MealType:    string(a.MealType),
	}
}

func BuildTripResponse(t entities.Trip) TripResponse {
	activities := make([]ActivityResponse, 0, len(t.Activities))
	for _, a := range t.Activities {
		activities = append(activities, BuildActivityResponse(a))
	}
	return TripResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		StartDate:      utils.FormatRFC3339(t.StartDate),
		EndDate:        utils.FormatRFC3339(t.EndDate),
		Country:        t.Country,
		ImageURL:       t.ImageURL,
		LocalImagePath: t.LocalImagePath,
		Mock:           t.Mock,
		AIGenerated:    t.AIGenerated,
		Activities:     activities,
	}
}
