package app

import "placedir/internal/domain"

// JSONLDForPlace builds the schema.org LocalBusiness document for a place.
// aggregateRating is only present when the place has reviews.
func JSONLDForPlace(p domain.EnrichedPlace, pageURL string) map[string]any {
	doc := map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     p.Name,
		"image":    p.Images,
		"address":  p.Address,
		"url":      pageURL,
	}
	if p.Phone != "" {
		doc["telephone"] = p.Phone
	}
	if p.RatingCount > 0 {
		doc["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": p.AvgRating,
			"reviewCount": p.RatingCount,
		}
	}
	return doc
}
