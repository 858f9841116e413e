package dto

type PlaceResponse struct {
	Name     string `json:"name"`
	District string `json:"district"`
	Point    Coord  `json:"point"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type ReverseGeocodeResponse struct {
	Name string `json:"name"`
}
