package handlers

import (
	"net/http"
	"shipment-route-service/internal/api/dto"
	"shipment-route-service/internal/services"
)

type ShipmentHandler struct {
	Router *services.ShipmentRouter
}

func (h *ShipmentHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.ShipmentRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Origin == nil || req.Destination == nil {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	origin, err := toDisplayPoint(*req.Origin)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "origin: "+err.Error())
		return
	}
	destination, err := toDisplayPoint(*req.Destination)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "destination: "+err.Error())
		return
	}

	route, err := h.Router.Route(r.Context(), req.ShipmentID, origin, destination)
	if err != nil {
		writeServiceError(w, r, "shipment route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ShipmentRouteResponse{
		ShipmentID:       route.ShipmentID,
		Points:           toCoords(route.Points),
		DistanceMeters:   route.DistanceMeters,
		DurationSeconds:  route.DurationSeconds,
		EstimatedArrival: route.EstimatedArrival,
	})
}
