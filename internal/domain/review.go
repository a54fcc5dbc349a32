package domain

// Review ratings are accepted as submitted; out-of-range values flow
// into the aggregates.
type Review struct {
	PlaceID int64   `json:"placeId"`
	Rating  float64 `json:"rating"`
	Author  string  `json:"author,omitempty"`
	Title   string  `json:"title,omitempty"`
	Text    string  `json:"text,omitempty"`
	Date    string  `json:"date,omitempty"`
	Source  string  `json:"source,omitempty"` // "local" for locally-submitted reviews
}
