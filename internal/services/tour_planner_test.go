package services

import (
	"context"
	"shipment-route-service/internal/adapters/cache"
	"shipment-route-service/internal/adapters/mock"
	"shipment-route-service/internal/domain"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOptimizer struct {
	mu    sync.Mutex
	tour  []int
	calls int
}

func (o *fakeOptimizer) OptimizeTour(ctx context.Context, points []domain.ProviderPoint) ([]int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	return o.tour, nil
}

func newTestPlanner(optimizer *fakeOptimizer) (*TourPlanner, *mock.DirectionsProvider) {
	provider := mock.NewDirectionsProvider()
	planner := NewTourPlanner(
		optimizer,
		NewPlaceNamer(&mock.Geocoder{}, cache.NewMemo[string]("names", nil)),
		NewRouteComposer(NewRouteFetcher(provider), 16, 1),
		cache.NewMemo[domain.TourPlan]("tours", nil),
	)
	return planner, provider
}

func TestPlanTourAppliesOptimizerOrder(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{2, 0, 1}}
	planner, _ := newTestPlanner(optimizer)

	plan, err := planner.PlanTour(context.Background(), TourRequest{ID: "t-1", Stops: triangle})
	require.NoError(t, err)

	assert.Equal(t, "t-1", plan.ID)
	require.Len(t, plan.Stops, 3)
	assert.Equal(t, triangle[2], plan.Stops[0].Point)
	assert.Equal(t, triangle[0], plan.Stops[1].Point)
	assert.Equal(t, triangle[1], plan.Stops[2].Point)
	for i, s := range plan.Stops {
		assert.Equal(t, i+1, s.Sequence)
		assert.NotEmpty(t, s.Name)
	}

	require.NotNil(t, plan.Route)
	first, last := plan.Route.Points[0], plan.Route.Points[len(plan.Route.Points)-1]
	assert.InDelta(t, triangle[2].Lng, first.Lng, 1e-6)
	assert.InDelta(t, first.Lng, last.Lng, 1e-9)
	assert.InDelta(t, first.Lat, last.Lat, 1e-9)
}

func TestPlanTourMemoizedByID(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{0, 1, 2}}
	planner, provider := newTestPlanner(optimizer)

	a, err := planner.PlanTour(context.Background(), TourRequest{ID: "t-2", Stops: triangle})
	require.NoError(t, err)
	b, err := planner.PlanTour(context.Background(), TourRequest{ID: "t-2", Stops: triangle})
	require.NoError(t, err)

	assert.Equal(t, a.Route.ID, b.Route.ID)
	assert.Equal(t, 1, optimizer.calls)
	assert.Equal(t, 1, provider.Calls())
}

func TestPlanTourKeepOrderSkipsOptimizer(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{2, 1, 0}}
	planner, _ := newTestPlanner(optimizer)

	plan, err := planner.PlanTour(context.Background(), TourRequest{ID: "t-3", Stops: triangle, KeepOrder: true})
	require.NoError(t, err)

	assert.Zero(t, optimizer.calls)
	assert.Equal(t, triangle[0], plan.Stops[0].Point)
	assert.Equal(t, triangle[2], plan.Stops[2].Point)
}

func TestPlanTourRejectsBadOptimizerTour(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{0, 0, 1}}
	planner, _ := newTestPlanner(optimizer)

	_, err := planner.PlanTour(context.Background(), TourRequest{Stops: triangle})
	assert.ErrorIs(t, err, domain.ErrProvider)
	assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPlanTourRequiresTwoStops(t *testing.T) {
	planner, _ := newTestPlanner(&fakeOptimizer{})

	_, err := planner.PlanTour(context.Background(), TourRequest{Stops: triangle[:1]})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestEditTourMoveAndRemove(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{2, 1, 0}}
	planner, _ := newTestPlanner(optimizer)

	moved, err := planner.EditTour(context.Background(), triangle, StopEdit{Op: "move", From: 0, To: 2}, 0)
	require.NoError(t, err)
	require.Len(t, moved.Stops, 3)
	assert.Equal(t, triangle[1], moved.Stops[0].Point)
	assert.Equal(t, triangle[0], moved.Stops[2].Point)

	removed, err := planner.EditTour(context.Background(), triangle, StopEdit{Op: "remove", Index: 1}, 0)
	require.NoError(t, err)
	require.Len(t, removed.Stops, 2)
	assert.Equal(t, 2, removed.Stops[1].Sequence)

	assert.Zero(t, optimizer.calls)

	_, err = planner.EditTour(context.Background(), triangle, StopEdit{Op: "remove", Index: 5}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = planner.EditTour(context.Background(), triangle[:2], StopEdit{Op: "remove", Index: 0}, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPlanTourPartialPlanIsNotMemoized(t *testing.T) {
	optimizer := &fakeOptimizer{tour: []int{0, 1, 2}}
	planner, provider := newTestPlanner(optimizer)

	failAt := domain.ToProviderFrame(triangle[1])
	provider.FailWhen = func(origin, destination domain.ProviderPoint) error {
		if origin == failAt {
			return &domain.ProviderError{Op: "driving", Status: "0", Info: "OVER_QUOTA"}
		}
		return nil
	}

	req := TourRequest{ID: "t-4", Stops: triangle, MaxPoints: 2}

	partial, err := planner.PlanTour(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "t-4", partial.ID)
	assert.True(t, partial.Route.Partial())

	provider.FailWhen = nil

	full, err := planner.PlanTour(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, full.Route.Partial())
	assert.Equal(t, 2, optimizer.calls)

	again, err := planner.PlanTour(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, full.Route.ID, again.Route.ID)
	assert.Equal(t, 2, optimizer.calls)
}
