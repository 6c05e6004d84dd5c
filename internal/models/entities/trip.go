package entities

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a user-defined travel plan. It owns its activities exclusively;
// an activity never belongs to more than one trip.
type Trip struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	Country        string     `json:"country"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	LocalImagePath string     `json:"localImagePath,omitempty"`
	Mock           bool       `json:"mock,omitempty"`
	AIGenerated    bool       `json:"aiGenerated,omitempty"`
	Activities     []Activity `json:"activities"`
}

// SetRemoteImage makes the remote URL the authoritative cover image.
// At most one of ImageURL/LocalImagePath is set at a time.
func (t *Trip) SetRemoteImage(url string) {
	t.ImageURL = url
	t.LocalImagePath = ""
}

// SetLocalImage makes the locally cached file the authoritative cover image.
func (t *Trip) SetLocalImage(path string) {
	t.LocalImagePath = path
	t.ImageURL = ""
}

// Same reports identity, not structural equality.
func (t Trip) Same(other Trip) bool {
	return t.ID == other.ID
}
