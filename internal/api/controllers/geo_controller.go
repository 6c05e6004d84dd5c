package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type GeoController struct {
	geoService services.GeoServiceInterface
}

func NewGeoController(geoService services.GeoServiceInterface) *GeoController {
	return &GeoController{
		geoService: geoService,
	}
}

// Locate resolves a free-text place name to a coordinate.
func (gc *GeoController) Locate(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		utils.RespondError(c, http.StatusBadRequest, "place is required")
		return
	}

	coord, err := gc.geoService.Locate(c.Request.Context(), place)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.LocateResponse{
		Query: place,
		Lat:   coord.Lat,
		Lng:   coord.Lng,
	}, "Location resolved successfully")
}

// Routes estimates travel between two coordinates for the requested
// transport modes. Modes with no viable route are omitted.
func (gc *GeoController) Routes(c *gin.Context) {
	var req request_models.RoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from and to coordinates are required")
		return
	}

	estimates, err := gc.geoService.Routes(c.Request.Context(),
		services.Coordinate{Lat: req.FromLat, Lng: req.FromLng},
		services.Coordinate{Lat: req.ToLat, Lng: req.ToLng},
		req.Modes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.RouteEstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, response_models.RouteEstimateResponse{
			Mode:            e.Mode,
			DistanceMeters:  e.DistanceMeters,
			DurationSeconds: e.DurationSeconds,
		})
	}
	utils.RespondSuccess(c, out, "Routes estimated successfully")
}
