package entities

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypeActivity      ActivityType = "activity"
	ActivityTypeAccommodation ActivityType = "accommodation"
	ActivityTypeRestaurant    ActivityType = "restaurant"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeActivity, ActivityTypeAccommodation, ActivityTypeRestaurant:
		return true
	}
	return false
}

// MealType is only meaningful for restaurant activities.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealMultiple  MealType = "multiple"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealMultiple:
		return true
	}
	return false
}

// Activity is a single dated, located event within a trip.
type Activity struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Location    string       `json:"location"`
	Type        ActivityType `json:"type"`
	MealType    MealType     `json:"mealType,omitempty"`
}

// NewActivity assigns a fresh id. A meal type on a non-restaurant
// activity is silently cleared rather than rejected.
func NewActivity(name, description string, date time.Time, location string, typ ActivityType, meal MealType) Activity {
	if typ != ActivityTypeRestaurant {
		meal = ""
	}
	return Activity{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		Type:        typ,
		MealType:    meal,
	}
}

// NormalizeMealType applies the restaurant-only convention to an
// activity built outside NewActivity (decoded from JSON, edited in place).
func (a *Activity) NormalizeMealType() {
	if a.Type != ActivityTypeRestaurant {
		a.MealType = ""
	}
}

func (a Activity) Same(other Activity) bool {
	return a.ID == other.ID
}
