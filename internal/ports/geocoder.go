package ports

import (
	"context"
	"shipment-route-service/internal/domain"
)

// Contract for turning a provider-frame coordinate into a formatted address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, p domain.ProviderPoint) (string, error)
}

// A keyword search candidate in the provider frame.
type PlaceCandidate struct {
	Name     string
	District string
	Point    domain.ProviderPoint
}

// Contract for free-text place lookup.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, keyword string) ([]PlaceCandidate, error)
}
