package api

import (
	"net/http"
	"shipment-route-service/internal/api/handlers"
	"shipment-route-service/internal/services"
)

// Services groups the application services the HTTP layer exposes.
type Services struct {
	Composer  *services.RouteComposer
	Planner   *services.TourPlanner
	Shipments *services.ShipmentRouter
	Search    *services.PlaceSearch
	Namer     *services.PlaceNamer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc Services) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Composer: svc.Composer}
	tourHandler := &handlers.TourHandler{Planner: svc.Planner}
	shipmentHandler := &handlers.ShipmentHandler{Router: svc.Shipments}
	placeHandler := &handlers.PlaceHandler{Places: svc.Search, Namer: svc.Namer}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/compose", routeHandler.Compose)
	mux.HandleFunc("/tours", tourHandler.Plan)
	mux.HandleFunc("/tours/edit", tourHandler.Edit)
	mux.HandleFunc("/shipments/route", shipmentHandler.Route)
	mux.HandleFunc("/places/search", placeHandler.Search)
	mux.HandleFunc("/places/reverse", placeHandler.Reverse)

	return requestIDMiddleware(loggingMiddleware(mux))
}
