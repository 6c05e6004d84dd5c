package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/entities"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type TripsController struct {
	tripService services.TripServiceInterface
}

func NewTripsController(tripService services.TripServiceInterface) *TripsController {
	return &TripsController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List all trips
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Router /trips [get]
func (tc *TripsController) ListTrips(c *gin.Context) {
	trips, err := tc.tripService.ListTrips(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, response_models.BuildTripResponse(t))
	}
	utils.RespondSuccess(c, out, "Trips fetched successfully")
}

func (tc *TripsController) GetTrip(c *gin.Context) {
	trip, err := tc.tripService.GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Trip fetched successfully")
}

func (tc *TripsController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, country, start_date and end_date are required")
		return
	}
	if req.EndDate.Before(req.StartDate) {
		utils.RespondError(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	trip, err := tc.tripService.AddTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Trip created successfully")
}

func (tc *TripsController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, country, start_date and end_date are required")
		return
	}
	if req.EndDate.Before(req.StartDate) {
		utils.RespondError(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	trip, err := tc.tripService.EditTrip(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Trip updated successfully")
}

func (tc *TripsController) DeleteTrip(c *gin.Context) {
	if err := tc.tripService.DeleteTrip(c.Request.Context(), c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (tc *TripsController) CreateActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, date and type are required")
		return
	}

	activity, err := tc.tripService.AddActivity(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildActivityResponse(*activity), "Activity created successfully")
}

func (tc *TripsController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, date and type are required")
		return
	}

	activity, err := tc.tripService.EditActivity(c.Request.Context(), c.Param("tripId"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildActivityResponse(*activity), "Activity updated successfully")
}

func (tc *TripsController) DeleteActivity(c *gin.Context) {
	err := tc.tripService.DeleteActivity(c.Request.Context(), c.Param("tripId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}

// ReorderActivity moves an activity onto another activity or onto a day
// section, mirroring the client's drag-and-drop gesture.
func (tc *TripsController) ReorderActivity(c *gin.Context) {
	var req request_models.ReorderActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "activity_id and a drop target are required")
		return
	}

	trip, err := tc.tripService.ReorderActivity(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Activity reordered successfully")
}

// GetDayView returns the filtered, day-grouped itinerary. Query params:
// q (name search), types (comma-separated), date (RFC3339 or YYYY-MM-DD).
func (tc *TripsController) GetDayView(c *gin.Context) {
	trip, err := tc.tripService.GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var selected []entities.ActivityType
	if raw := c.Query("types"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			typ := entities.ActivityType(strings.TrimSpace(part))
			if !typ.Valid() {
				utils.RespondError(c, http.StatusBadRequest, "Unknown activity type: "+string(typ))
				return
			}
			selected = append(selected, typ)
		}
	}

	dateFilter, err := parseDateQuery(c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid date filter")
		return
	}

	groups := services.BuildDayView(trip.Activities, c.Query("q"), selected, dateFilter)

	out := make([]response_models.DaySection, 0, len(groups))
	for _, g := range groups {
		section := response_models.DaySection{
			Day:        g.Day.Format("2006-01-02"),
			Activities: make([]response_models.ActivityResponse, 0, len(g.Activities)),
		}
		for _, a := range g.Activities {
			section.Activities = append(section.Activities, response_models.BuildActivityResponse(a))
		}
		out = append(out, section)
	}
	utils.RespondSuccess(c, out, "Day view built successfully")
}

func (tc *TripsController) ExportTrip(c *gin.Context) {
	doc, err := tc.tripService.ExportTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, doc, "Trip exported successfully")
}

func (tc *TripsController) ImportTrip(c *gin.Context) {
	var doc entities.ExportableTrip
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip document")
		return
	}
	if doc.Trip.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip name is required")
		return
	}

	trip, err := tc.tripService.ImportTrip(c.Request.Context(), doc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Trip imported successfully")
}
