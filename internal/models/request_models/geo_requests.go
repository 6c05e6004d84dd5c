package request_models

type RoutesRequest struct {
	FromLat float64  `json:"from_lat" binding:"required"`
	FromLng float64  `json:"from_lng" binding:"required"`
	ToLat   float64  `json:"to_lat" binding:"required"`
	ToLng   float64  `json:"to_lng" binding:"required"`
	Modes   []string `json:"modes"`
}
