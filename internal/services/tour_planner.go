package services

import (
	"context"
	"errors"
	"fmt"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
)

// TourRequest describes a tour to plan. KeepOrder skips the optimizer and
// routes the stops in the order given, as after a manual reorder.
type TourRequest struct {
	ID        string
	Stops     []domain.DisplayPoint
	KeepOrder bool
	MaxPoints int
}

// TourPlanner orders a tour with the optimizer, names its stops and composes
// the closed route through them. Plans with an ID are memoized by that ID.
type TourPlanner struct {
	Optimizer ports.TourOptimizer
	Namer     *PlaceNamer
	Composer  *RouteComposer
	Plans     ports.Memo[domain.TourPlan]
}

func NewTourPlanner(
	optimizer ports.TourOptimizer,
	namer *PlaceNamer,
	composer *RouteComposer,
	plans ports.Memo[domain.TourPlan],
) *TourPlanner {
	return &TourPlanner{Optimizer: optimizer, Namer: namer, Composer: composer, Plans: plans}
}

func (p *TourPlanner) PlanTour(ctx context.Context, req TourRequest) (plan domain.TourPlan, err error) {
	defer obs.Time(ctx, "plan_tour")(&err)

	if len(req.Stops) < 2 {
		return domain.TourPlan{}, domain.InvalidArgument("plan tour: need at least 2 stops, got %d", len(req.Stops))
	}

	if req.ID == "" || p.Plans == nil {
		return p.plan(ctx, req)
	}

	// A memoized plan is keyed by ID only; KeepOrder plans are not memoized
	// since their order is chosen by the caller.
	if req.KeepOrder {
		return p.plan(ctx, req)
	}

	plan, err = p.Plans.Memoize(ctx, req.ID, func(ctx context.Context) (domain.TourPlan, error) {
		plan, err := p.plan(ctx, req)
		if err == nil && plan.Route.Partial() {
			return domain.TourPlan{}, &partialPlanError{plan: plan}
		}
		return plan, err
	})

	var partial *partialPlanError
	if errors.As(err, &partial) {
		return partial.plan, nil
	}
	return plan, err
}

// partialPlanError carries a plan with failed segments out of Memoize so the
// caller still gets it while the next request for the ID retries.
type partialPlanError struct {
	plan domain.TourPlan
}

func (e *partialPlanError) Error() string {
	return fmt.Sprintf("tour %q has %d failed segments", e.plan.ID, len(e.plan.Route.Failures))
}

func (p *TourPlanner) plan(ctx context.Context, req TourRequest) (domain.TourPlan, error) {
	stops := domain.NewStops(req.Stops)

	if !req.KeepOrder {
		ordered, err := p.optimize(ctx, stops)
		if err != nil {
			return domain.TourPlan{}, fmt.Errorf("plan tour: %w", err)
		}
		stops = ordered
	}

	route, err := p.Composer.ComposeLoop(ctx, domain.Points(stops), req.MaxPoints)
	if err != nil {
		return domain.TourPlan{}, fmt.Errorf("plan tour: %w", err)
	}

	stops = p.Namer.NameStops(ctx, stops)

	id := req.ID
	if id == "" {
		id = route.ID
	}

	return domain.TourPlan{ID: id, Stops: stops, Route: route}, nil
}

func (p *TourPlanner) optimize(ctx context.Context, stops []domain.Stop) ([]domain.Stop, error) {
	native := make([]domain.ProviderPoint, 0, len(stops))
	for _, s := range stops {
		native = append(native, domain.ToProviderFrame(s.Point))
	}

	tour, err := p.Optimizer.OptimizeTour(ctx, native)
	if err != nil {
		return nil, err
	}

	ordered, err := domain.ApplyTour(stops, tour)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			// A malformed tour is the optimizer's fault, not the caller's.
			return nil, &domain.ProviderError{Op: "optimize tour", Info: err.Error()}
		}
		return nil, err
	}
	return ordered, nil
}

// StopEdit is a manual change to a tour's stop order. Op is "move" (From to
// To, drag-and-drop style) or "remove" (Index).
type StopEdit struct {
	Op    string
	From  int
	To    int
	Index int
}

// EditTour applies edit to the stops and recomposes the tour in the
// resulting order without consulting the optimizer.
func (p *TourPlanner) EditTour(ctx context.Context, stops []domain.DisplayPoint, edit StopEdit, maxPoints int) (domain.TourPlan, error) {
	current := domain.NewStops(stops)

	var (
		edited []domain.Stop
		err    error
	)
	switch edit.Op {
	case "move":
		edited, err = domain.Reorder(current, edit.From, edit.To)
	case "remove":
		edited, err = domain.Remove(current, edit.Index)
	default:
		err = domain.InvalidArgument("unknown stop edit %q", edit.Op)
	}
	if err != nil {
		return domain.TourPlan{}, fmt.Errorf("edit tour: %w", err)
	}

	return p.PlanTour(ctx, TourRequest{Stops: domain.Points(edited), KeepOrder: true, MaxPoints: maxPoints})
}
