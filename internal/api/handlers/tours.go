package handlers

import (
	"net/http"
	"shipment-route-service/internal/api/dto"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/services"
	"strings"
)

type TourHandler struct {
	Planner *services.TourPlanner
}

// Plan orders the stops, names them and returns the closed route through them.
func (h *TourHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.TourRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stops, err := toDisplayPoints("stops", req.Stops)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.Planner.PlanTour(r.Context(), services.TourRequest{
		ID:        strings.TrimSpace(req.ID),
		Stops:     stops,
		KeepOrder: req.KeepOrder,
		MaxPoints: req.MaxPoints,
	})
	if err != nil {
		writeServiceError(w, r, "plan tour", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTourResponse(plan))
}

// Edit moves or removes one stop and recomposes the route in the new order.
func (h *TourHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.TourEditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	stops, err := toDisplayPoints("stops", req.Stops)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.Planner.EditTour(r.Context(), stops, services.StopEdit{
		Op:    strings.ToLower(strings.TrimSpace(req.Op)),
		From:  req.From,
		To:    req.To,
		Index: req.Index,
	}, req.MaxPoints)
	if err != nil {
		writeServiceError(w, r, "edit tour", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTourResponse(plan))
}

func toTourResponse(plan domain.TourPlan) dto.TourResponse {
	res := dto.TourResponse{
		ID:    plan.ID,
		Stops: make([]dto.StopResponse, 0, len(plan.Stops)),
		Route: toRouteResponse(plan.Route),
	}
	for _, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			Sequence: s.Sequence,
			Name:     s.Name,
			Point:    toCoord(s.Point),
		})
	}
	return res
}
