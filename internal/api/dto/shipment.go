package dto

import "time"

type ShipmentRouteRequest struct {
	ShipmentID  string `json:"shipment_id"`
	Origin      *Coord `json:"origin"`
	Destination *Coord `json:"destination"`
}

type ShipmentRouteResponse struct {
	ShipmentID       string    `json:"shipment_id"`
	Points           []Coord   `json:"points"`
	DistanceMeters   int       `json:"distance_meters"`
	DurationSeconds  int       `json:"duration_seconds"`
	EstimatedArrival time.Time `json:"estimated_arrival"`
}
