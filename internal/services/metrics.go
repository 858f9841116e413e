package services

import (
	"math"
	"shipment-route-service/internal/domain"

	"github.com/golang/geo/s2"
)

// Planar display metrics: one degree of polyline length counts as 100 km and
// 200 minutes of driving. They are coarse on purpose and only used for
// presentation; provider totals are reported next to them.
const (
	kmPerDegree      = 100.0
	minutesPerDegree = 200.0
)

const earthRadiusMeters = 6371008.8

// PlanarLength sums the straight-line length of every edge in degrees.
func PlanarLength(points []domain.DisplayPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += math.Hypot(points[i].Lng-points[i-1].Lng, points[i].Lat-points[i-1].Lat)
	}
	return total
}

// RouteMetrics derives distance (km, 1 decimal) and duration (whole minutes)
// from the planar length of the polyline.
func RouteMetrics(points []domain.DisplayPoint) (distanceKm float64, durationMinutes float64) {
	deg := PlanarLength(points)
	distanceKm = math.Round(deg*kmPerDegree*10) / 10
	durationMinutes = math.Round(deg * minutesPerDegree)
	return distanceKm, durationMinutes
}

// GreatCircleMeters sums the great-circle length of every edge.
func GreatCircleMeters(points []domain.DisplayPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		a := s2.LatLngFromDegrees(points[i-1].Lat, points[i-1].Lng)
		b := s2.LatLngFromDegrees(points[i].Lat, points[i].Lng)
		total += a.Distance(b).Radians() * earthRadiusMeters
	}
	return total
}
