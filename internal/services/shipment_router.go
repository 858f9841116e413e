package services

import (
	"context"
	"fmt"
	"math"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
	"strings"
	"time"
)

// ShipmentRouter resolves the origin -> destination route of a shipment.
// Routes are memoized by shipment ID for the life of the process, so the
// estimated arrival reflects the time of the first lookup.
type ShipmentRouter struct {
	Fetcher *RouteFetcher
	Routes  ports.Memo[domain.ShipmentRoute]
	Now     func() time.Time
}

func NewShipmentRouter(fetcher *RouteFetcher, routes ports.Memo[domain.ShipmentRoute]) *ShipmentRouter {
	return &ShipmentRouter{Fetcher: fetcher, Routes: routes, Now: time.Now}
}

func (r *ShipmentRouter) Route(
	ctx context.Context,
	shipmentID string,
	origin domain.DisplayPoint,
	destination domain.DisplayPoint,
) (route domain.ShipmentRoute, err error) {
	defer obs.Time(ctx, "shipment_route")(&err)

	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return domain.ShipmentRoute{}, domain.InvalidArgument("shipment route: shipment id must be non-empty")
	}

	return r.Routes.Memoize(ctx, shipmentID, func(ctx context.Context) (domain.ShipmentRoute, error) {
		seg, err := r.Fetcher.FetchSegmentRoute(ctx, []domain.DisplayPoint{origin, destination})
		if err != nil {
			return domain.ShipmentRoute{}, fmt.Errorf("shipment route: %q: %w", shipmentID, err)
		}

		distance := seg.DistanceMeters
		if distance == 0 {
			distance = int(math.Round(GreatCircleMeters(seg.Points)))
		}

		return domain.ShipmentRoute{
			ShipmentID:       shipmentID,
			Points:           seg.Points,
			DistanceMeters:   distance,
			DurationSeconds:  seg.DurationSeconds,
			EstimatedArrival: r.Now().Add(time.Duration(seg.DurationSeconds) * time.Second).UTC(),
		}, nil
	})
}
