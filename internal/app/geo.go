package app

import (
	"fmt"
	"math"

	"placedir/internal/domain"
)

// earthRadiusM is fixed; distances must be reproducible across clients.
const earthRadiusM = 6371000.0

// Distance returns the great-circle distance between two points in meters
// (haversine).
func Distance(a, b domain.Coords) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	la1, la2 := rad(a.Lat), rad(b.Lat)
	x := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(la1)*math.Cos(la2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(x))
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// FormatDistance renders meters below 1 km as a rounded integer, kilometers
// to one decimal otherwise.
func FormatDistance(m float64) string {
	if m < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(m)))
	}
	return fmt.Sprintf("%.1f km", m/1000)
}
