package geo

import (
	"math"

	"github.com/projekt-r/restorang/app/wolt"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(p1)*math.Cos(p2)*math.Pow(math.Sin(dlon/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// NearestDistrict returns the name of the district whose centroid is closest
// to the given point. Ties go to the first entry in slice order. Returns
// false when the district list is empty.
func NearestDistrict(lat, lon float64, districts []wolt.District) (string, bool) {
	if len(districts) == 0 {
		return "", false
	}

	bestName := ""
	bestDist := math.Inf(1)
	for _, d := range districts {
		dist := Haversine(lat, lon, d.Lat, d.Lon)
		if dist < bestDist {
			bestDist = dist
			bestName = d.Name
		}
	}

	return bestName, true
}
