package services

import (
	"context"
	"errors"
	"fmt"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxPoints matches the waypoint limit of the driving endpoint.
const DefaultMaxPoints = 16

// SegmentFetcher resolves one segment into a display-frame polyline.
type SegmentFetcher interface {
	FetchSegmentRoute(ctx context.Context, segment []domain.DisplayPoint) (SegmentRoute, error)
}

// RouteComposer turns an ordered list of stops into one continuous route by
// splitting it into segments, fetching each and stitching the results.
//
// A failed segment does not fail the route: it is logged, recorded in
// ComposedRoute.Failures and the remaining segments are still stitched. Only
// when every segment fails is ErrRouteUnavailable returned.
type RouteComposer struct {
	Fetcher   SegmentFetcher
	MaxPoints int

	// Parallelism bounds concurrent segment fetches. Values below 2 fetch
	// segments one after another in order.
	Parallelism int
}

func NewRouteComposer(fetcher SegmentFetcher, maxPoints, parallelism int) *RouteComposer {
	return &RouteComposer{Fetcher: fetcher, MaxPoints: maxPoints, Parallelism: parallelism}
}

// ComposeLoop composes a closed route that returns to the first stop.
// maxPoints <= 0 uses the composer's configured limit.
func (c *RouteComposer) ComposeLoop(ctx context.Context, stops []domain.DisplayPoint, maxPoints int) (route *domain.ComposedRoute, err error) {
	defer obs.Time(ctx, "compose_loop")(&err)

	if len(stops) < 2 {
		return nil, domain.InvalidArgument("compose loop: need at least 2 stops, got %d", len(stops))
	}

	closed := make([]domain.DisplayPoint, 0, len(stops)+1)
	closed = append(closed, stops...)
	closed = append(closed, stops[0])

	route, err = c.compose(ctx, closed, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("compose loop: %w", err)
	}
	return route, nil
}

// ComposeOpenPath composes a route from the first stop to the last.
// maxPoints <= 0 uses the composer's configured limit.
func (c *RouteComposer) ComposeOpenPath(ctx context.Context, stops []domain.DisplayPoint, maxPoints int) (route *domain.ComposedRoute, err error) {
	defer obs.Time(ctx, "compose_open_path")(&err)

	if len(stops) < 2 {
		return nil, domain.InvalidArgument("compose open path: need at least 2 stops, got %d", len(stops))
	}

	route, err = c.compose(ctx, stops, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("compose open path: %w", err)
	}
	return route, nil
}

type segmentResult struct {
	route SegmentRoute
	err   error
}

func (c *RouteComposer) compose(ctx context.Context, sequence []domain.DisplayPoint, maxPoints int) (*domain.ComposedRoute, error) {
	if maxPoints <= 0 {
		maxPoints = c.MaxPoints
	}
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}

	segments, err := SplitIntoSegments(sequence, maxPoints)
	if err != nil {
		return nil, err
	}

	results, err := c.fetchAll(ctx, segments)
	if err != nil {
		return nil, err
	}

	route := &domain.ComposedRoute{
		ID:           uuid.NewString(),
		Points:       []domain.DisplayPoint{},
		SegmentCount: len(segments),
	}

	log := obs.Logger(ctx)
	prevOK := false
	for i, r := range results {
		if r.err != nil {
			log.WithError(r.err).WithField("segment", i).WithField("segments", len(segments)).Warn("segment route failed")
			route.Failures = append(route.Failures, domain.SegmentFailure{Index: i, Message: r.err.Error(), Err: r.err})
			prevOK = false
			continue
		}

		pts := r.route.Points
		// A segment starts on the last point of the one before it. Drop that
		// shared point when the previous segment made it into the route.
		if prevOK && len(pts) > 0 {
			pts = pts[1:]
		}
		route.Points = append(route.Points, pts...)
		route.ProviderDistanceMeters += r.route.DistanceMeters
		route.ProviderDurationSeconds += r.route.DurationSeconds
		prevOK = len(r.route.Points) > 0
	}

	if len(route.Failures) == len(segments) {
		errs := make([]error, 0, len(route.Failures))
		for _, f := range route.Failures {
			errs = append(errs, f.Err)
		}
		return nil, fmt.Errorf("%w: all %d segments failed: %w", domain.ErrRouteUnavailable, len(segments), errors.Join(errs...))
	}

	route.DistanceKm, route.DurationMinutes = RouteMetrics(route.Points)
	return route, nil
}

// fetchAll fetches every segment and returns results in segment order.
// Only context cancellation aborts the whole batch.
func (c *RouteComposer) fetchAll(ctx context.Context, segments [][]domain.DisplayPoint) ([]segmentResult, error) {
	results := make([]segmentResult, len(segments))

	if c.Parallelism < 2 {
		for i, seg := range segments {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := c.Fetcher.FetchSegmentRoute(ctx, seg)
			results[i] = segmentResult{route: r, err: err}
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Parallelism)
	for i, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := c.Fetcher.FetchSegmentRoute(gctx, seg)
			results[i] = segmentResult{route: r, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
