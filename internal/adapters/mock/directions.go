package mock

import (
	"context"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/ports"
	"sync"
)

// DirectionsProvider is a deterministic in-memory directions provider.
// Every leg between consecutive input points becomes one step of three
// points: start, midpoint, end. Each leg reports LegMeters and LegSeconds.
type DirectionsProvider struct {
	LegMeters  int
	LegSeconds int

	// FailWhen, when set, is consulted before routing and its error returned.
	FailWhen func(origin, destination domain.ProviderPoint) error

	mu    sync.Mutex
	calls int
}

func NewDirectionsProvider() *DirectionsProvider {
	return &DirectionsProvider{LegMeters: 1000, LegSeconds: 60}
}

// Calls returns how many times Driving was invoked.
func (p *DirectionsProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *DirectionsProvider) Driving(
	ctx context.Context,
	origin domain.ProviderPoint,
	destination domain.ProviderPoint,
	waypoints []domain.ProviderPoint,
) (ports.DrivingPath, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.DrivingPath{}, err
	}
	if p.FailWhen != nil {
		if err := p.FailWhen(origin, destination); err != nil {
			return ports.DrivingPath{}, err
		}
	}

	stops := make([]domain.ProviderPoint, 0, len(waypoints)+2)
	stops = append(stops, origin)
	stops = append(stops, waypoints...)
	stops = append(stops, destination)

	path := ports.DrivingPath{Steps: make([][]domain.ProviderPoint, 0, len(stops)-1)}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		mid := domain.ProviderPoint{Lng: (a.Lng + b.Lng) / 2, Lat: (a.Lat + b.Lat) / 2}
		path.Steps = append(path.Steps, []domain.ProviderPoint{a, mid, b})
		path.DistanceMeters += p.LegMeters
		path.DurationSeconds += p.LegSeconds
	}

	return path, nil
}
