package handlers

import (
	"net/http"
	"shipment-route-service/internal/api/dto"
	"shipment-route-service/internal/services"
	"strconv"
)

// PlaceHandler exposes keyword search and reverse geocoding.
type PlaceHandler struct {
	Places *services.PlaceSearch
	Namer  *services.PlaceNamer
}

func (h *PlaceHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	places := h.Places.Search(r.Context(), r.URL.Query().Get("q"))

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, dto.PlaceResponse{
			Name:     p.Name,
			District: p.District,
			Point:    toCoord(p.Point),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlaceHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	if errLng != nil || errLat != nil {
		writeError(w, r, http.StatusBadRequest, "lng and lat must be numbers")
		return
	}

	p, err := toDisplayPoint(dto.Coord{lng, lat})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ReverseGeocodeResponse{Name: h.Namer.Name(r.Context(), p)})
}
