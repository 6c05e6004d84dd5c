package response_models

type PhotoResponse struct {
	ImageURL string `json:"image_url"`
}
