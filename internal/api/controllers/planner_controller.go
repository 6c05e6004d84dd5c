package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// GenerateTrip godoc
// @Summary Generate a trip itinerary with AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip preferences"
// @Success 200 {object} response_models.TripResponse
// @Failure 422 {object} utils.APIResponse
// @Router /planner/generate [post]
func (pc *PlannerController) GenerateTrip(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Country, start_date and end_date are required")
		return
	}

	trip, err := pc.plannerService.GenerateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.BuildTripResponse(*trip), "Trip generated successfully")
}
