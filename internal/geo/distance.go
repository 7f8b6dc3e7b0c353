package geo

import (
	"fmt"
	"math"

	"github.com/vietts/insicuri/pkg/e"
)

const earthRadiusM = 6371000.0

type Point struct {
	Lat float64
	Lng float64
}

func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceMeters computes the great-circle distance between two points
// using the haversine formula. Accurate to within a few meters at urban
// scale, which is all the dedup radius needs.
func DistanceMeters(a, b Point) (float64, error) {
	if !a.Valid() || !b.Valid() {
		return 0, fmt.Errorf("geo.DistanceMeters: %w", e.ErrInvalidCoordinates)
	}

	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c, nil
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
