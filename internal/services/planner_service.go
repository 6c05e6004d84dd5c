package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

type PlannerServiceInterface interface {
	GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (*entities.Trip, error)
}

// PlannerService turns a preference form into a stored trip by prompting
// a generative model and parsing its output as untrusted input.
type PlannerService struct {
	client utils.PlannerClientInterface
	trips  TripServiceInterface
}

func NewPlannerService(client utils.PlannerClientInterface, trips TripServiceInterface) PlannerServiceInterface {
	return &PlannerService{
		client: client,
		trips:  trips,
	}
}

const maxTripDays = 30

func (p *PlannerService) GenerateTrip(ctx context.Context, req request_models.GenerateTripRequest) (*entities.Trip, error) {
	if strings.TrimSpace(req.Country) == "" {
		return nil, utils.ErrInvalidInput
	}
	start, err := utils.ParseFlexibleDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseFlexibleDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidInput
	}
	days := int(utils.StartOfDay(end).Sub(utils.StartOfDay(start)).Hours()/24) + 1
	if days > maxTripDays {
		return nil, utils.ErrInvalidInput
	}

	prompt := buildTripPrompt(req, days)

	raw, err := p.client.GenerateTripJSON(ctx, prompt)
	if err != nil {
		logger.GetLogger().Warnw("planner client failed", "error", err)
		return nil, utils.ErrPlannerUnavailable
	}

	trip, err := parseGeneratedTrip(raw)
	if err != nil {
		return nil, err
	}

	// The model's ids and provenance are never trusted.
	trip.ID = uuid.New()
	trip.AIGenerated = true
	trip.Mock = false
	if trip.Country == "" {
		trip.Country = req.Country
	}
	for i := range trip.Activities {
		trip.Activities[i].ID = uuid.New()
		trip.Activities[i].NormalizeMealType()
	}

	return p.trips.AddGeneratedTrip(ctx, *trip)
}

func buildTripPrompt(req request_models.GenerateTripRequest, days int) string {
	var b strings.Builder
	b.WriteString(`You are a travel assistant. Generate a trip as valid JSON matching exactly this schema:

{
  "name": "string",
  "startDate": "ISO8601 date string",
  "endDate": "ISO8601 date string",
  "country": "string",
  "activities": [
    {
      "name": "string",
      "description": "string",
      "date": "ISO8601 date string",
      "location": "string",
      "type": "activity | accommodation | restaurant",
      "mealType": "breakfast | lunch | dinner | multiple (restaurants only, omit otherwise)"
    }
  ]
}

Rules:
- The location of every activity must be an exact, geocodable place name; it is fed directly into a map search.
- Name the hotel explicitly for accommodations.
- One full day has 3 meals: breakfast, lunch, and dinner. The first day is arrival day and should only have dinner; the last day is departure day and should only have breakfast.
- Do not plan transportation, arrival, or departure segments.
- All enum values lowercase. Output ONLY valid JSON, no markdown and no code blocks.

`)
	fmt.Fprintf(&b, "Trip length: %d days.\n", days)
	fmt.Fprintf(&b, "Country: %s\n", req.Country)
	if len(req.Cities) > 0 {
		fmt.Fprintf(&b, "Cities to visit: %s\n", strings.Join(req.Cities, ", "))
	}
	fmt.Fprintf(&b, "Start date: %s\nEnd date: %s\n", req.StartDate, req.EndDate)
	if len(req.TripStyle) > 0 {
		fmt.Fprintf(&b, "Trip style: %s\n", strings.Join(req.TripStyle, ", "))
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Interests, ", "))
	}
	if req.Pace != "" {
		fmt.Fprintf(&b, "Pace: %s\n", req.Pace)
	}
	if req.BudgetPerDay > 0 {
		fmt.Fprintf(&b, "Budget per day: %d EUR\n", req.BudgetPerDay)
	}
	if len(req.DietaryRestrictions) > 0 {
		fmt.Fprintf(&b, "Dietary restrictions: %s\n", strings.Join(req.DietaryRestrictions, ", "))
	}
	if req.AccessibilityNeeds != "" {
		fmt.Fprintf(&b, "Accessibility needs: %s\n", req.AccessibilityNeeds)
	}
	return b.String()
}

// generatedTrip is the schema the model is asked to produce. Dates stay
// strings until validated; the model is inconsistent about timestamps
// versus bare dates.
type generatedTrip struct {
	Name       string              `json:"name"`
	StartDate  string              `json:"startDate"`
	EndDate    string              `json:"endDate"`
	Country    string              `json:"country"`
	Activities []generatedActivity `json:"activities"`
}

type generatedActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	MealType    string `json:"mealType"`
}

// parseGeneratedTrip validates model output and converts it into a trip.
// Every failure is a *utils.PlanParseError; the caller surfaces it as a
// recoverable condition, never a crash.
func parseGeneratedTrip(raw string) (*entities.Trip, error) {
	clean := utils.StripCodeFences(raw)
	if !json.Valid([]byte(clean)) {
		return nil, &utils.PlanParseError{Reason: "response is not valid JSON"}
	}

	var doc generatedTrip
	if err := json.Unmarshal([]byte(clean), &doc); err != nil {
		return nil, &utils.PlanParseError{Reason: "response does not match the trip schema", Err: err}
	}
	if doc.Name == "" {
		return nil, &utils.PlanParseError{Reason: "trip name is missing"}
	}

	start, err := utils.ParseFlexibleDate(doc.StartDate)
	if err != nil {
		return nil, &utils.PlanParseError{Reason: "unparseable trip start date", Err: err}
	}
	end, err := utils.ParseFlexibleDate(doc.EndDate)
	if err != nil {
		return nil, &utils.PlanParseError{Reason: "unparseable trip end date", Err: err}
	}

	trip := &entities.Trip{
		Name:       doc.Name,
		StartDate:  start,
		EndDate:    end,
		Country:    doc.Country,
		Activities: make([]entities.Activity, 0, len(doc.Activities)),
	}

	for i, ga := range doc.Activities {
		typ := entities.ActivityType(ga.Type)
		if !typ.Valid() {
			return nil, &utils.PlanParseError{Reason: fmt.Sprintf("activity %d has unknown type %q", i, ga.Type)}
		}
		meal := entities.MealType(ga.MealType)
		if meal != "" && !meal.Valid() {
			return nil, &utils.PlanParseError{Reason: fmt.Sprintf("activity %d has unknown meal type %q", i, ga.MealType)}
		}
		var date time.Time
		if date, err = utils.ParseFlexibleDate(ga.Date); err != nil {
			return nil, &utils.PlanParseError{Reason: fmt.Sprintf("activity %d has unparseable date %q", i, ga.Date), Err: err}
		}
		trip.Activities = append(trip.Activities,
			entities.NewActivity(ga.Name, ga.Description, date, ga.Location, typ, meal))
	}
	return trip, nil
}
