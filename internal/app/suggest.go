package app

import (
	"strings"

	"placedir/internal/domain"
)

const DefaultSuggestLimit = 8

// Suggest returns the first matches for a typed prefix of a search, scanning
// the same haystack as the free-text filter. Empty input yields no
// suggestions.
func Suggest(places []domain.EnrichedPlace, q string, limit int) []domain.Suggestion {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	var out []domain.Suggestion
	for _, p := range places {
		if strings.Contains(searchText(p.Place), q) {
			out = append(out, domain.Suggestion{Name: p.Name, Slug: p.Slug})
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
