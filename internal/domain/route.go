package domain

import "time"

// SegmentFailure records one segment that could not be fetched while the rest
// of the route was still composed.
type SegmentFailure struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Represents one continuous drivable path in the display frame.
// A ComposedRoute is produced once per tour and never mutated; a changed tour
// yields a new ComposedRoute.
//
// DistanceKm and DurationMinutes are the planar approximation derived from the
// points themselves. The provider-reported totals only cover segments that
// were fetched successfully.
type ComposedRoute struct {
	ID                      string           `json:"id"`
	Points                  []DisplayPoint   `json:"points"`
	DistanceKm              float64          `json:"distance_km"`
	DurationMinutes         float64          `json:"duration_minutes"`
	ProviderDistanceMeters  int              `json:"provider_distance_meters"`
	ProviderDurationSeconds int              `json:"provider_duration_seconds"`
	SegmentCount            int              `json:"segment_count"`
	Failures                []SegmentFailure `json:"failures,omitempty"`
}

// Partial reports whether at least one segment failed.
func (r *ComposedRoute) Partial() bool { return len(r.Failures) > 0 }

// Represents the origin -> destination driving route of a single shipment.
type ShipmentRoute struct {
	ShipmentID       string         `json:"shipment_id"`
	Points           []DisplayPoint `json:"points"`
	DistanceMeters   int            `json:"distance_meters"`
	DurationSeconds  int            `json:"duration_seconds"`
	EstimatedArrival time.Time      `json:"estimated_arrival"`
}

// Place is a keyword search candidate.
type Place struct {
	Name     string       `json:"name"`
	District string       `json:"district"`
	Point    DisplayPoint `json:"point"`
}

// Represents an optimized tour: stops in visiting order plus the composed
// loop through them.
type TourPlan struct {
	ID    string         `json:"id"`
	Stops []Stop         `json:"stops"`
	Route *ComposedRoute `json:"route"`
}
