package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placedir/internal/app"
	"placedir/internal/domain"
)

func testSnapshot() domain.Snapshot {
	places := []domain.Place{
		{ID: 1, Slug: "cafe-a", Name: "Cafe A", Short: "Espresso bar", CityID: "c1", CategoryID: "k1",
			PriceLevel: "€€", Neighborhood: "Altstadt", IndoorOutdoor: "indoor", Tags: []string{"wifi", "vegan"}, IsOpenNow: true},
		{ID: 2, Slug: "bar-b", Name: "Bar B", Short: "Cocktails", CityID: "c1", CategoryID: "k2",
			PriceLevel: "€€€", Neighborhood: "Hafen", IndoorOutdoor: "outdoor", Tags: []string{"terrace"}},
		{ID: 3, Slug: "cafe-c", Name: "Cafe C", Short: "Quiet corner", CityID: "c1", CategoryID: "k1",
			PriceLevel: "€", Neighborhood: "Altstadt", IndoorOutdoor: "indoor", Tags: []string{"wifi"}, IsOpenNow: true},
		{ID: 4, Slug: "other-city", Name: "Elsewhere", CityID: "c2", CategoryID: "k1", PriceLevel: "€"},
	}
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 5}, {PlaceID: 1, Rating: 4}, {PlaceID: 1, Rating: 5},
		{PlaceID: 2, Rating: 3},
		{PlaceID: 3, Rating: 5},
	}
	categories := []domain.Category{{ID: "k1", Slug: "cafes"}, {ID: "k2", Slug: "bars"}}
	cities := []domain.City{{ID: "c1", Name: "Altstadt City"}, {ID: "c2", Name: "Other"}}
	return domain.Snapshot{
		Cities:     cities,
		Categories: categories,
		Places:     app.Enrich(places, reviews, categories),
		Reviews:    reviews,
	}
}

func TestQuery_ScopedToFirstCity(t *testing.T) {
	rs := app.Query(testSnapshot(), domain.QueryState{})
	require.Equal(t, 3, rs.Total)
	for _, p := range rs.Items {
		assert.Equal(t, "c1", p.CityID)
	}
}

func TestQuery_FiltersAndCombined(t *testing.T) {
	snap := testSnapshot()

	rs := app.Query(snap, domain.QueryState{"c": "cafes"})
	assert.Equal(t, 2, rs.Total)

	rs = app.Query(snap, domain.QueryState{"c": "cafes", "q": "espresso"})
	require.Equal(t, 1, rs.Total)
	assert.Equal(t, "cafe-a", rs.Items[0].Slug)

	rs = app.Query(snap, domain.QueryState{"price": "€€€"})
	require.Equal(t, 1, rs.Total)
	assert.Equal(t, "bar-b", rs.Items[0].Slug)

	rs = app.Query(snap, domain.QueryState{"stars": "4"})
	assert.Equal(t, 2, rs.Total) // 4.7 and 5.0 pass, 3.0 does not

	rs = app.Query(snap, domain.QueryState{"openNow": "1"})
	assert.Equal(t, 2, rs.Total)

	rs = app.Query(snap, domain.QueryState{"indoorOutdoor": "OUTDOOR"})
	require.Equal(t, 1, rs.Total)
	assert.Equal(t, "bar-b", rs.Items[0].Slug)

	rs = app.Query(snap, domain.QueryState{"neighborhood": "alt"})
	assert.Equal(t, 2, rs.Total)

	rs = app.Query(snap, domain.QueryState{"tags": "WIFI"})
	assert.Equal(t, 2, rs.Total)
}

func TestQuery_UnknownCategorySlugLeavesFilterInactive(t *testing.T) {
	rs := app.Query(testSnapshot(), domain.QueryState{"c": "museums"})
	assert.Equal(t, 3, rs.Total)
}

func TestQuery_MalformedStarsFiltersEverything(t *testing.T) {
	rs := app.Query(testSnapshot(), domain.QueryState{"stars": "many"})
	assert.Zero(t, rs.Total)
}

func TestQuery_SortRatingStable(t *testing.T) {
	places := []domain.Place{
		{ID: 1, Slug: "low", CityID: "c1"},
		{ID: 2, Slug: "first-high", CityID: "c1"},
		{ID: 3, Slug: "second-high", CityID: "c1"},
	}
	// avgRating 3.2, 4.8, 4.8
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 3.2},
		{PlaceID: 2, Rating: 4.8},
		{PlaceID: 3, Rating: 4.8},
	}
	snap := domain.Snapshot{
		Cities: []domain.City{{ID: "c1"}},
		Places: app.Enrich(places, reviews, nil),
	}

	rs := app.Query(snap, domain.QueryState{"sort": "rating"})
	require.Equal(t, 3, rs.Total)
	assert.Equal(t, "first-high", rs.Items[0].Slug) // ties keep input order
	assert.Equal(t, "second-high", rs.Items[1].Slug)
	assert.Equal(t, "low", rs.Items[2].Slug)
}

func TestQuery_SortPopularityAndPrice(t *testing.T) {
	snap := testSnapshot()

	rs := app.Query(snap, domain.QueryState{"sort": "popularity"})
	assert.Equal(t, "cafe-a", rs.Items[0].Slug) // 3 reviews

	rs = app.Query(snap, domain.QueryState{"sort": "priceAsc"})
	assert.Equal(t, "cafe-c", rs.Items[0].Slug) // "€"
	assert.Equal(t, "bar-b", rs.Items[2].Slug)  // "€€€"

	rs = app.Query(snap, domain.QueryState{"sort": "priceDesc"})
	assert.Equal(t, "bar-b", rs.Items[0].Slug)
}

func TestQuery_RelevanceWithQueryRanksByScore(t *testing.T) {
	places := []domain.Place{
		{ID: 1, Slug: "mid", Name: "Cafe Mid", CityID: "c1"},
		{ID: 2, Slug: "top", Name: "Cafe Top", CityID: "c1"},
		{ID: 3, Slug: "bottom", Name: "Cafe Bottom", CityID: "c1"},
	}
	reviews := []domain.Review{
		{PlaceID: 1, Rating: 3},
		{PlaceID: 2, Rating: 5},
		{PlaceID: 3, Rating: 1},
	}
	snap := domain.Snapshot{
		Cities: []domain.City{{ID: "c1"}},
		Places: app.Enrich(places, reviews, nil),
	}

	// every survivor matches the keyword, so the avgRating/5 term decides
	rs := app.Query(snap, domain.QueryState{"q": "cafe"})
	require.Equal(t, 3, rs.Total)
	assert.Equal(t, "top", rs.Items[0].Slug)
	assert.Equal(t, "mid", rs.Items[1].Slug)
	assert.Equal(t, "bottom", rs.Items[2].Slug)
}

func TestQuery_FreeTextDoesNotSearchReviews(t *testing.T) {
	places := []domain.Place{{ID: 1, Slug: "plain", Name: "Plain Cafe", CityID: "c1"}}
	reviews := []domain.Review{{PlaceID: 1, Rating: 5, Text: "best flat white in town"}}
	snap := domain.Snapshot{
		Cities: []domain.City{{ID: "c1"}},
		Places: app.Enrich(places, reviews, nil),
	}
	// review text feeds the relevance score, not the filter haystack
	rs := app.Query(snap, domain.QueryState{"q": "white"})
	assert.Zero(t, rs.Total)
}

func TestQuery_RelevanceNoQueryFallsBackToRating(t *testing.T) {
	rs := app.Query(testSnapshot(), domain.QueryState{})
	assert.Equal(t, "cafe-c", rs.Items[0].Slug) // 5.0 first
	assert.Equal(t, "cafe-a", rs.Items[1].Slug) // 4.7
	assert.Equal(t, "bar-b", rs.Items[2].Slug)  // 3.0
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := make([]domain.EnrichedPlace, 23)
	for i := range items {
		items[i].ID = int64(i)
	}

	pr := app.Paginate(items, 99, 10)
	assert.Equal(t, 3, pr.Page)
	assert.Equal(t, 3, pr.Pages)
	require.Len(t, pr.PageItems, 3)
	assert.Equal(t, int64(20), pr.PageItems[0].ID)
	assert.Equal(t, int64(22), pr.PageItems[2].ID)

	pr = app.Paginate(items, -5, 10)
	assert.Equal(t, 1, pr.Page)
	assert.Len(t, pr.PageItems, 10)
}

func TestPaginate_EmptyStillHasOnePage(t *testing.T) {
	pr := app.Paginate(nil, 1, 10)
	assert.Equal(t, 1, pr.Page)
	assert.Equal(t, 1, pr.Pages)
	assert.Empty(t, pr.PageItems)
}
