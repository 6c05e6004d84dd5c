package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PhotosController struct {
	photoService services.PhotoServiceInterface
}

func NewPhotosController(photoService services.PhotoServiceInterface) *PhotosController {
	return &PhotosController{
		photoService: photoService,
	}
}

// SearchCoverImage returns zero-or-one image URL for a destination. An
// empty image_url in the response means nothing was found.
func (pc *PhotosController) SearchCoverImage(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	imageURL, err := pc.photoService.FindCoverImage(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.PhotoResponse{ImageURL: imageURL}, "Photo search completed")
}
