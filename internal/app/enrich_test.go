package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placedir/internal/app"
	"placedir/internal/domain"
)

func TestEnrich_AveragesAndCategorySlug(t *testing.T) {
	places := []domain.Place{
		{ID: 1, CityID: "c1", CategoryID: "k1", PriceLevel: "€€", Name: "Cafe A"},
	}
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 4},
		{PlaceID: 1, Rating: 5},
	}
	categories := []domain.Category{{ID: "k1", Slug: "cafes", Name: "Cafés"}}

	out := app.Enrich(places, reviews, categories)
	require.Len(t, out, 1)

	p := out[0]
	assert.Equal(t, 4.5, p.AvgRating)
	assert.Equal(t, 2, p.RatingCount)
	assert.Equal(t, "cafes", p.CategorySlug)
	assert.Len(t, p.AllReviews, 2)
	// unrelated fields pass through unchanged
	assert.Equal(t, "Cafe A", p.Name)
	assert.Equal(t, "€€", p.PriceLevel)
}

func TestEnrich_EmptyReviewsAndUnknownCategory(t *testing.T) {
	places := []domain.Place{{ID: 7, CityID: "c1", CategoryID: "nope"}}

	out := app.Enrich(places, nil, []domain.Category{{ID: "k1", Slug: "cafes"}})
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].AvgRating)
	assert.Equal(t, 0, out[0].RatingCount)
	assert.Empty(t, out[0].CategorySlug)
	assert.Empty(t, out[0].AllReviews)
}

func TestEnrich_RoundsToOneDecimal(t *testing.T) {
	places := []domain.Place{{ID: 1}}
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 4},
		{PlaceID: 1, Rating: 4},
		{PlaceID: 1, Rating: 5},
	}
	out := app.Enrich(places, reviews, nil)
	assert.Equal(t, 4.3, out[0].AvgRating) // 13/3 = 4.333...
}

func TestEnrich_PreservesConcatenationOrder(t *testing.T) {
	places := []domain.Place{{ID: 1}}
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 5, Author: "remote-1"},
		{PlaceID: 1, Rating: 3, Author: "remote-2"},
		{PlaceID: 1, Rating: 1, Author: "local-1", Source: "local"},
	}
	out := app.Enrich(places, reviews, nil)
	require.Len(t, out[0].AllReviews, 3)
	assert.Equal(t, "remote-1", out[0].AllReviews[0].Author)
	assert.Equal(t, "remote-2", out[0].AllReviews[1].Author)
	assert.Equal(t, "local-1", out[0].AllReviews[2].Author)
}

func TestEnrich_Idempotent(t *testing.T) {
	places := []domain.Place{
		{ID: 1, CityID: "c1", CategoryID: "k1", Name: "A", Tags: []string{"wifi"}},
		{ID: 2, CityID: "c1", CategoryID: "k2", Name: "B"},
	}
	reviews := []domain.Review{{PlaceID: 1, Rating: 2}, {PlaceID: 2, Rating: 4}}
	categories := []domain.Category{{ID: "k1", Slug: "cafes"}, {ID: "k2", Slug: "bars"}}

	first := app.Enrich(places, reviews, categories)
	second := app.Enrich(places, reviews, categories)
	assert.Equal(t, first, second)

	// inputs untouched
	assert.Equal(t, []domain.Review{{PlaceID: 1, Rating: 2}, {PlaceID: 2, Rating: 4}}, reviews)
	assert.Equal(t, "A", places[0].Name)
}

func TestEnrich_MalformedRatingsAccepted(t *testing.T) {
	// no validation boundary: out-of-range ratings skew the average
	places := []domain.Place{{ID: 1}}
	reviews := []domain.Review{{PlaceID: 1, Rating: 11}, {PlaceID: 1, Rating: 1}}
	out := app.Enrich(places, reviews, nil)
	assert.Equal(t, 6.0, out[0].AvgRating)
	assert.Equal(t, 2, out[0].RatingCount)
}
