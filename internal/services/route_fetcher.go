package services

import (
	"context"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/ports"
)

// SegmentRoute is the driving polyline of one segment in the display frame,
// with the totals the provider reported for it.
type SegmentRoute struct {
	Points          []domain.DisplayPoint
	DistanceMeters  int
	DurationSeconds int
}

// RouteFetcher resolves one segment into a dense drivable polyline.
type RouteFetcher struct {
	Provider ports.DirectionsProvider
}

func NewRouteFetcher(provider ports.DirectionsProvider) *RouteFetcher {
	return &RouteFetcher{Provider: provider}
}

// FetchSegmentRoute converts the segment into the provider frame, asks the
// provider for one driving path (first point origin, last point destination,
// interior points waypoints) and flattens its steps back into the display
// frame.
//
// A segment with fewer than two points has nothing to route and yields an
// empty result without calling the provider.
func (f *RouteFetcher) FetchSegmentRoute(ctx context.Context, segment []domain.DisplayPoint) (SegmentRoute, error) {
	if len(segment) < 2 {
		return SegmentRoute{Points: []domain.DisplayPoint{}}, nil
	}

	native := make([]domain.ProviderPoint, 0, len(segment))
	for _, p := range segment {
		native = append(native, domain.ToProviderFrame(p))
	}

	origin := native[0]
	destination := native[len(native)-1]
	waypoints := native[1 : len(native)-1]

	path, err := f.Provider.Driving(ctx, origin, destination, waypoints)
	if err != nil {
		return SegmentRoute{}, err
	}

	n := 0
	for _, step := range path.Steps {
		n += len(step)
	}

	out := SegmentRoute{
		Points:          make([]domain.DisplayPoint, 0, n),
		DistanceMeters:  path.DistanceMeters,
		DurationSeconds: path.DurationSeconds,
	}

	// Consecutive steps share their joint point; keep it once.
	var last domain.ProviderPoint
	for _, step := range path.Steps {
		for _, p := range step {
			if len(out.Points) > 0 && p == last {
				continue
			}
			out.Points = append(out.Points, domain.ToDisplayFrame(p))
			last = p
		}
	}

	return out, nil
}
