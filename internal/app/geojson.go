package app

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"placedir/internal/domain"
)

// MapView builds the marker layer for a filtered listing: one point feature
// per place with the popup fields, plus the collection bound so clients can
// fit the viewport without walking the features again.
func MapView(items []domain.EnrichedPlace) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	mp := make(orb.MultiPoint, 0, len(items))
	for _, p := range items {
		pt := orb.Point{p.Coords.Lng, p.Coords.Lat}
		mp = append(mp, pt)

		f := geojson.NewFeature(pt)
		f.Properties["id"] = p.ID
		f.Properties["slug"] = p.Slug
		f.Properties["name"] = p.Name
		f.Properties["priceLevel"] = p.PriceLevel
		f.Properties["avgRating"] = p.AvgRating
		f.Properties["ratingCount"] = p.RatingCount
		if len(p.Images) > 0 {
			f.Properties["image"] = p.Images[0]
		}
		fc.Append(f)
	}
	if len(mp) > 0 {
		fc.BBox = geojson.NewBBox(mp.Bound())
	}
	return fc
}
