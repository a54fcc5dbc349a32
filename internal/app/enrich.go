package app

import (
	"math"

	"placedir/internal/domain"
)

// Enrich attaches the derived rating fields and the category slug to every
// place. reviews must already be in merge order (remote first, local
// appended); within each source the dataset order is preserved. The inputs
// are never mutated, so re-running with a different review set is safe.
//
// Ratings are not validated here. Malformed ratings flow into the average
// uncritically.
func Enrich(places []domain.Place, reviews []domain.Review, categories []domain.Category) []domain.EnrichedPlace {
	byPlace := make(map[int64][]domain.Review)
	for _, r := range reviews {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], r)
	}

	// first category wins when ids collide
	slugByID := make(map[string]string, len(categories))
	for _, c := range categories {
		if _, ok := slugByID[c.ID]; !ok {
			slugByID[c.ID] = c.Slug
		}
	}

	out := make([]domain.EnrichedPlace, 0, len(places))
	for _, p := range places {
		rs := byPlace[p.ID]
		var avg float64
		if len(rs) > 0 {
			var sum float64
			for _, r := range rs {
				sum += r.Rating
			}
			avg = round1(sum / float64(len(rs)))
		}
		out = append(out, domain.EnrichedPlace{
			Place:        p,
			AvgRating:    avg,
			RatingCount:  len(rs),
			CategorySlug: slugByID[p.CategoryID],
			AllReviews:   rs,
		})
	}
	return out
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
