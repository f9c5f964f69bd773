// README: Geo helpers for coordinate-based station lookup.
package station

import (
	"math"

	"mrtbot/internal/types"
)

const earthRadiusKm = 6371.0

// Nearest returns the gazetteer station closest to p.
func Nearest(p types.Point) Station {
	best := stations[0]
	bestDist := haversineKm(p, best.Position)
	for _, st := range stations[1:] {
		if d := haversineKm(p, st.Position); d < bestDist {
			best, bestDist = st, d
		}
	}
	return best
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
