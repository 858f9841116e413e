package handlers

import (
	"net/http"
	"shipment-route-service/internal/api/dto"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/services"
)

// RouteHandler composes routes through caller-ordered points.
type RouteHandler struct {
	Composer *services.RouteComposer
}

func (h *RouteHandler) Compose(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.ComposeRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	points, err := toDisplayPoints("points", req.Points)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.MaxPoints < 0 || req.MaxPoints == 1 {
		writeError(w, r, http.StatusBadRequest, "max_points must be at least 2")
		return
	}

	var route *domain.ComposedRoute
	if req.Loop {
		route, err = h.Composer.ComposeLoop(r.Context(), points, req.MaxPoints)
	} else {
		route, err = h.Composer.ComposeOpenPath(r.Context(), points, req.MaxPoints)
	}
	if err != nil {
		writeServiceError(w, r, "compose route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(route))
}
