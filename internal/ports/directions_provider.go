package ports

import (
	"context"
	"shipment-route-service/internal/domain"
)

// One candidate driving path returned by a directions provider.
// Steps are polylines in the provider frame, in travel order.
type DrivingPath struct {
	DistanceMeters  int
	DurationSeconds int
	Steps           [][]domain.ProviderPoint
}

// Contract for retrieving a driving path through ordered provider-frame points.
type DirectionsProvider interface {
	// Return the first driving path from origin through waypoints to destination.
	// Implementations report non-success statuses as *domain.ProviderError.
	Driving(
		ctx context.Context,
		origin domain.ProviderPoint,
		destination domain.ProviderPoint,
		waypoints []domain.ProviderPoint,
	) (DrivingPath, error)
}
