package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels to HTTP statuses.
func HandleServiceError(c *gin.Context, err error) {
	var parseErr *PlanParseError

	switch {
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrPlaceNotFound):
		RespondError(c, http.StatusNotFound, "No result for that location")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.As(err, &parseErr):
		RespondError(c, http.StatusUnprocessableEntity, "Generated plan could not be parsed: "+parseErr.Reason)
	case errors.Is(err, ErrPlannerUnavailable):
		RespondError(c, http.StatusBadGateway, "Trip generation is temporarily unavailable")
	case errors.Is(err, ErrPhotoUnavailable):
		RespondError(c, http.StatusBadGateway, "Photo search is temporarily unavailable")
	case errors.Is(err, ErrRouteUnavailable):
		RespondError(c, http.StatusBadGateway, "Directions are temporarily unavailable")
	case errors.Is(err, ErrStorageError):
		logger.GetLogger().Errorw("storage error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.GetLogger().Errorw("unhandled service error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
