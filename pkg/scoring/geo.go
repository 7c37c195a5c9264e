package scoring

import "math"

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// DistanceKm returns the distance between viewer and candidate, or nil
// when either side has no coordinates.
func DistanceKm(v *ViewerContext, c *CandidateContext) *float64 {
	if v.Latitude == nil || c.Latitude == nil {
		return nil
	}
	d := HaversineKm(*v.Latitude, *v.Longitude, *c.Latitude, *c.Longitude)
	return &d
}
