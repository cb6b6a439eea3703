package photo

import "strings"

// Record is a single photo of the collection.
// This also matches one element of the dataset JSON array.
type Record struct {
	ID          string  `json:"id"`
	RootURL     string  `json:"root_url"`
	Version     string  `json:"version,omitempty"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timestamp   string  `json:"timestamp"` // ISO 8601, e.g. "2023-06-01T14:03:22"
}

// DisplayName turns a location label into the text shown to users
// ("Big_Sur" -> "Big Sur").
func DisplayName(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}
