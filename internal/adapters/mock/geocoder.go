package mock

import (
	"context"
	"fmt"
	"shipment-route-service/internal/domain"
	"sync"
)

// Geocoder answers reverse geocodes with a label derived from the point and
// counts how many lookups reached it.
type Geocoder struct {
	// Err, when set, is returned from every lookup.
	Err error
	// NoAddress makes successful lookups answer with an empty address.
	NoAddress bool

	mu    sync.Mutex
	calls int
}

func (g *Geocoder) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, p domain.ProviderPoint) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	if g.Err != nil {
		return "", g.Err
	}
	if g.NoAddress {
		return "", nil
	}
	return fmt.Sprintf("near %.2f,%.2f", p.Lat, p.Lng), nil
}
