package app_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placedir/internal/app"
	"placedir/internal/domain"
)

func TestMapView(t *testing.T) {
	items := []domain.EnrichedPlace{
		{Place: domain.Place{ID: 1, Slug: "a", Name: "A", Coords: domain.Coords{Lat: 52.50, Lng: 13.30}, Images: []string{"a.jpg"}}, AvgRating: 4.0, RatingCount: 2},
		{Place: domain.Place{ID: 2, Slug: "b", Name: "B", Coords: domain.Coords{Lat: 52.55, Lng: 13.45}}},
	}

	fc := app.MapView(items)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	pt := f.Point()
	assert.Equal(t, 13.30, pt.Lon())
	assert.Equal(t, 52.50, pt.Lat())
	assert.Equal(t, "a", f.Properties["slug"])
	assert.Equal(t, 4.0, f.Properties["avgRating"])
	assert.Equal(t, "a.jpg", f.Properties["image"])
	_, hasImage := fc.Features[1].Properties["image"]
	assert.False(t, hasImage, "no image property without images")

	// bbox spans both points, [minLng minLat maxLng maxLat]
	b, err := fc.MarshalJSON()
	require.NoError(t, err)
	var out struct {
		BBox []float64 `json:"bbox"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []float64{13.30, 52.50, 13.45, 52.55}, out.BBox)
}

func TestMapView_EmptyHasNoBBox(t *testing.T) {
	fc := app.MapView(nil)
	assert.Empty(t, fc.Features)
	assert.Nil(t, fc.BBox)
}
