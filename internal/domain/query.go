package domain

// QueryState is the flat, URL-roundtrippable form of "what the user is
// currently asking for". It is replaced wholesale, never field-patched.
type QueryState map[string]string

// Query-state keys. They match the URL query parameters one to one.
const (
	KeyCategory      = "c"
	KeyQuery         = "q"
	KeyPrice         = "price"
	KeyStars         = "stars"
	KeyOpenNow       = "openNow"
	KeyIndoorOutdoor = "indoorOutdoor"
	KeyNeighborhood  = "neighborhood"
	KeyTags          = "tags"
	KeySort          = "sort"
	KeyPage          = "page"
)

// ResultSet is the filtered and sorted listing before pagination.
type ResultSet struct {
	Items []EnrichedPlace `json:"items"`
	Total int             `json:"total"`
}

// PageResult is one clamped page of a ResultSet.
type PageResult struct {
	PageItems []EnrichedPlace `json:"pageItems"`
	Page      int             `json:"page"`
	Pages     int             `json:"pages"`
}

// Snapshot is one immutable, fully enriched view of the datasets. Reviews
// holds the merged list (remote first, local appended, no dedup).
type Snapshot struct {
	Cities     []City
	Categories []Category
	Places     []EnrichedPlace
	Reviews    []Review
	Generation int64
}
