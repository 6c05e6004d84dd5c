package entities

// ExportableTrip is the share-file format: one trip plus an optional
// base64-encoded cover image payload.
type ExportableTrip struct {
	Trip        Trip   `json:"trip"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}
