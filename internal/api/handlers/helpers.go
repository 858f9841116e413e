package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"shipment-route-service/internal/api/dto"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRouteUnavailable):
		obs.Logger(r.Context()).WithError(err).Warn(op + " failed")
		writeError(w, r, http.StatusBadGateway, "route unavailable")
	case errors.Is(err, domain.ErrProvider):
		obs.Logger(r.Context()).WithError(err).Warn(op + " failed")
		writeError(w, r, http.StatusBadGateway, "upstream provider error")
	default:
		obs.Logger(r.Context()).WithError(err).Error(op + " failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object into v and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func allowOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func toDisplayPoint(c dto.Coord) (domain.DisplayPoint, error) {
	lng, lat := c[0], c[1]
	if math.IsNaN(lng) || math.IsNaN(lat) || lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return domain.DisplayPoint{}, fmt.Errorf("coordinate [%g, %g] out of range", lng, lat)
	}
	return domain.DisplayPoint{Lng: lng, Lat: lat}, nil
}

func toDisplayPoints(field string, coords []dto.Coord) ([]domain.DisplayPoint, error) {
	out := make([]domain.DisplayPoint, 0, len(coords))
	for i, c := range coords {
		p, err := toDisplayPoint(c)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func toCoord(p domain.DisplayPoint) dto.Coord { return dto.Coord{p.Lng, p.Lat} }

func toCoords(points []domain.DisplayPoint) []dto.Coord {
	out := make([]dto.Coord, 0, len(points))
	for _, p := range points {
		out = append(out, toCoord(p))
	}
	return out
}

func toRouteResponse(route *domain.ComposedRoute) dto.RouteResponse {
	res := dto.RouteResponse{
		ID:                      route.ID,
		Points:                  toCoords(route.Points),
		DistanceKm:              route.DistanceKm,
		DurationMinutes:         route.DurationMinutes,
		ProviderDistanceMeters:  route.ProviderDistanceMeters,
		ProviderDurationSeconds: route.ProviderDurationSeconds,
		SegmentCount:            route.SegmentCount,
		Partial:                 route.Partial(),
		Failures:                make([]dto.SegmentFailureResponse, 0, len(route.Failures)),
	}
	for _, f := range route.Failures {
		res.Failures = append(res.Failures, dto.SegmentFailureResponse{Index: f.Index, Message: f.Message})
	}
	return res
}
