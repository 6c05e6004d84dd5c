package response_models

// DaySection is one rendered day group of the itinerary list.
type DaySection struct {
	Day        string             `json:"day"`
	Activities []ActivityResponse `json:"activities"`
}
