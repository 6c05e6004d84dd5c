package request_models

import "time"

type CreateTripRequest struct {
	Name      string    `json:"name" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	ImageURL  string    `json:"image_url"`
}

type UpdateTripRequest struct {
	Name      string    `json:"name" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	ImageURL  string    `json:"image_url"`
}
