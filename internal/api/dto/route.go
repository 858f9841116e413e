package dto

// Coordinates travel as [lng, lat] pairs in the display frame.
type Coord [2]float64

type ComposeRouteRequest struct {
	Points    []Coord `json:"points"`
	Loop      bool    `json:"loop"`
	MaxPoints int     `json:"max_points"`
}

type SegmentFailureResponse struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type RouteResponse struct {
	ID                      string                   `json:"id"`
	Points                  []Coord                  `json:"points"`
	DistanceKm              float64                  `json:"distance_km"`
	DurationMinutes         float64                  `json:"duration_minutes"`
	ProviderDistanceMeters  int                      `json:"provider_distance_meters"`
	ProviderDurationSeconds int                      `json:"provider_duration_seconds"`
	SegmentCount            int                      `json:"segment_count"`
	Partial                 bool                     `json:"partial"`
	Failures                []SegmentFailureResponse `json:"failures"`
}
