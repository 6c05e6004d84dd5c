package request_models

import "time"

type CreateActivityRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Type        string    `json:"type" binding:"required"`
	MealType    string    `json:"meal_type"`
}

type UpdateActivityRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location"`
	Type        string    `json:"type" binding:"required"`
	MealType    string    `json:"meal_type"`
}

// ReorderActivityRequest moves an activity by drag-and-drop. Exactly one
// of target_activity_id (drop onto another row) or target_day (drop onto
// a day section header) must be set.
type ReorderActivityRequest struct {
	ActivityID       string     `json:"activity_id" binding:"required"`
	TargetActivityID string     `json:"target_activity_id"`
	TargetDay        *time.Time `json:"target_day"`
}
