// Package geo provides great-circle distance calculations.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance calculations.
// Results from Distance are expressed in the same unit.
const EarthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance in kilometers
// between two WGS84 coordinate pairs.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := toRadians(lat1)
	rlat2 := toRadians(lat2)
	dlat := toRadians(lat2 - lat1)
	dlon := toRadians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
