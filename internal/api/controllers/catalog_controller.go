package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) GetPlannerOptions(c *gin.Context) {
	options, err := cc.catalogService.GetPlannerOptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, options, "Planner options fetched successfully")
}
