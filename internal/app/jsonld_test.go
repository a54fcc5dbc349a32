package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"placedir/internal/app"
	"placedir/internal/domain"
)

func TestJSONLDForPlace(t *testing.T) {
	p := domain.EnrichedPlace{
		Place: domain.Place{
			Name:    "Cafe Sued",
			Phone:   "+49 30 1234",
			Address: "Hauptstr. 1",
			Images:  []string{"a.jpg"},
		},
		AvgRating:   4.3,
		RatingCount: 7,
	}

	doc := app.JSONLDForPlace(p, "https://example.test/place.html?slug=cafe-sued")

	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "LocalBusiness", doc["@type"])
	assert.Equal(t, "Cafe Sued", doc["name"])
	assert.Equal(t, "+49 30 1234", doc["telephone"])

	agg, ok := doc["aggregateRating"].(map[string]any)
	if !ok {
		t.Fatalf("missing aggregateRating: %+v", doc)
	}
	assert.Equal(t, 4.3, agg["ratingValue"])
	assert.Equal(t, 7, agg["reviewCount"])
}

func TestJSONLDForPlace_NoReviewsNoPhone(t *testing.T) {
	doc := app.JSONLDForPlace(domain.EnrichedPlace{Place: domain.Place{Name: "New Spot"}}, "https://example.test/p")

	_, hasAgg := doc["aggregateRating"]
	assert.False(t, hasAgg, "aggregateRating must be absent without reviews")
	_, hasPhone := doc["telephone"]
	assert.False(t, hasPhone, "telephone must be absent when empty")
}
