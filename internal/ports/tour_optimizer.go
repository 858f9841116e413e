package ports

import (
	"context"
	"shipment-route-service/internal/domain"
)

// Port: the external tour-optimization service. The returned tour is an
// ordering of indices into points and is consumed as-is.
type TourOptimizer interface {
	OptimizeTour(ctx context.Context, points []domain.ProviderPoint) ([]int, error)
}
