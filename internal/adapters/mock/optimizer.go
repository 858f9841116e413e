package mock

import (
	"context"
	"shipment-route-service/internal/domain"
)

// Optimizer returns Tour when set, and the identity order otherwise.
type Optimizer struct {
	Tour []int
	Err  error
}

func (o *Optimizer) OptimizeTour(ctx context.Context, points []domain.ProviderPoint) ([]int, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	if o.Tour != nil {
		return o.Tour, nil
	}

	tour := make([]int, len(points))
	for i := range tour {
		tour[i] = i
	}
	return tour, nil
}
