package domain

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Place struct {
	ID            int64             `json:"id"`
	Slug          string            `json:"slug"`
	Name          string            `json:"name"`
	Short         string            `json:"short,omitempty"`
	Description   string            `json:"description,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Neighborhood  string            `json:"neighborhood,omitempty"`
	PriceLevel    string            `json:"priceLevel,omitempty"`
	IndoorOutdoor string            `json:"indoorOutdoor,omitempty"`
	Address       string            `json:"address,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Coords        Coords            `json:"coords"`
	OpeningHours  map[string]string `json:"openingHours,omitempty"` // keys mon..sun, value "HH:MM-HH:MM" or "closed"
	Images        []string          `json:"images,omitempty"`
	IsOpenNow     bool              `json:"isOpenNow"`
	CityID        string            `json:"cityId"`
	CategoryID    string            `json:"categoryId"`
}

// EnrichedPlace extends a Place with fields derived from the current review
// set. Derived fields are recomputed on every rebuild, never stored.
type EnrichedPlace struct {
	Place
	AvgRating    float64  `json:"avgRating"`
	RatingCount  int      `json:"ratingCount"`
	CategorySlug string   `json:"categorySlug"`
	AllReviews   []Review `json:"allReviews,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type City struct {
	ID     string `json:"id"`
	Slug   string `json:"slug"`
	Name   string `json:"name"`
	Locale string `json:"locale,omitempty"`
	Center Coords `json:"center"`
}

type Suggestion struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
