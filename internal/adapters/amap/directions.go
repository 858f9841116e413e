package amap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
)

// AMap caps a driving request at 16 points: origin, destination and up to
// 14 waypoints in between.
const MaxPointsPerRequest = 16

type drivingResponse struct {
	envelope
	Route struct {
		Paths []struct {
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Steps    []struct {
				Polyline string `json:"polyline"`
			} `json:"steps"`
		} `json:"paths"`
	} `json:"route"`
}

// Driving implements ports.DirectionsProvider using /v3/direction/driving.
func (c *Client) Driving(
	ctx context.Context,
	origin domain.ProviderPoint,
	destination domain.ProviderPoint,
	waypoints []domain.ProviderPoint,
) (_ ports.DrivingPath, err error) {
	defer obs.Time(ctx, "amap.Driving")(&err)

	const op = "amap driving"

	params := url.Values{}
	params.Set("origin", FormatPoint(origin))
	params.Set("destination", FormatPoint(destination))
	if len(waypoints) > 0 {
		params.Set("waypoints", FormatPoints(waypoints))
	}
	params.Set("strategy", c.Strategy)
	params.Set("extensions", "all")

	var decoded drivingResponse
	if err := c.getJSON(ctx, op, "/v3/direction/driving", params, &decoded); err != nil {
		return ports.DrivingPath{}, err
	}

	if !decoded.ok() {
		return ports.DrivingPath{}, &domain.ProviderError{Op: op, Status: decoded.Status, Info: decoded.Info}
	}

	if len(decoded.Route.Paths) == 0 {
		return ports.DrivingPath{}, &domain.ProviderError{Op: op, Status: decoded.Status, Info: "no paths returned"}
	}

	path := decoded.Route.Paths[0]
	out := ports.DrivingPath{
		DistanceMeters:  atoiOrZero(path.Distance),
		DurationSeconds: atoiOrZero(path.Duration),
		Steps:           make([][]domain.ProviderPoint, 0, len(path.Steps)),
	}

	for i, step := range path.Steps {
		pts, err := ParsePolyline(step.Polyline)
		if err != nil {
			return ports.DrivingPath{}, &domain.ProviderError{
				Op:     op,
				Status: decoded.Status,
				Err:    fmt.Errorf("step %d: %w", i, err),
			}
		}
		out.Steps = append(out.Steps, pts)
	}

	return out, nil
}

// AMap encodes numeric fields as strings; missing values count as zero.
func atoiOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f + 0.5)
	}
	return 0
}
