package services

import (
	"context"
	"fmt"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const defaultNamingConcurrency = 4

// PlaceNamer labels display points with a human-readable address.
// Lookups go through a memo keyed by the rounded coordinate; a failed lookup
// falls back to the coordinate label and is retried on the next call.
type PlaceNamer struct {
	Geocoder    ports.ReverseGeocoder
	Cache       ports.Memo[string]
	Concurrency int
}

func NewPlaceNamer(geocoder ports.ReverseGeocoder, cache ports.Memo[string]) *PlaceNamer {
	return &PlaceNamer{Geocoder: geocoder, Cache: cache, Concurrency: defaultNamingConcurrency}
}

// NameKey is the memo key of a point: "lat,lng" with four decimals.
func NameKey(p domain.DisplayPoint) string {
	return fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng)
}

// FallbackLabel is shown when no address is known for a point.
func FallbackLabel(p domain.DisplayPoint) string {
	return fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lng)
}

// Name returns the address of p. It never fails.
func (n *PlaceNamer) Name(ctx context.Context, p domain.DisplayPoint) string {
	name, err := n.Cache.Memoize(ctx, NameKey(p), func(ctx context.Context) (string, error) {
		addr, err := n.Geocoder.ReverseGeocode(ctx, domain.ToProviderFrame(p))
		if err != nil {
			return "", err
		}
		// The provider answered but knows no address here; remember that.
		if addr == "" {
			return FallbackLabel(p), nil
		}
		return addr, nil
	})
	if err != nil {
		obs.Logger(ctx).WithError(err).WithField("key", NameKey(p)).Debug("reverse geocode failed, using coordinates")
		return FallbackLabel(p)
	}
	return name
}

// NameStops returns a copy of stops with every Name filled in. Stops that
// already carry a name keep it.
func (n *PlaceNamer) NameStops(ctx context.Context, stops []domain.Stop) []domain.Stop {
	out := make([]domain.Stop, len(stops))
	copy(out, stops)

	keys := make([]string, 0, len(out))
	for _, s := range out {
		if s.Name == "" {
			keys = append(keys, NameKey(s.Point))
		}
	}
	if len(keys) == 0 {
		return out
	}
	n.Cache.Warm(ctx, keys)

	limit := n.Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := range out {
		if out[i].Name != "" {
			continue
		}
		g.Go(func() error {
			out[i].Name = n.Name(ctx, out[i].Point)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
