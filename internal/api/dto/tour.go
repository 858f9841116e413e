package dto

type TourRequest struct {
	ID        string  `json:"id"`
	Stops     []Coord `json:"stops"`
	KeepOrder bool    `json:"keep_order"`
	MaxPoints int     `json:"max_points"`
}

type StopResponse struct {
	Sequence int    `json:"sequence"`
	Name     string `json:"name"`
	Point    Coord  `json:"point"`
}

type TourResponse struct {
	ID    string         `json:"id"`
	Stops []StopResponse `json:"stops"`
	Route RouteResponse  `json:"route"`
}

// TourEditRequest applies one manual edit: op "move" uses from/to, op
// "remove" uses index.
type TourEditRequest struct {
	Stops     []Coord `json:"stops"`
	Op        string  `json:"op"`
	From      int     `json:"from"`
	To        int     `json:"to"`
	Index     int     `json:"index"`
	MaxPoints int     `json:"max_points"`
}
