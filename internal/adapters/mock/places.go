package mock

import (
	"context"
	"shipment-route-service/internal/ports"
	"strings"
)

// PlaceSearcher returns the candidates whose name contains the keyword.
type PlaceSearcher struct {
	Candidates []ports.PlaceCandidate
}

func (s *PlaceSearcher) SearchPlaces(ctx context.Context, keyword string) ([]ports.PlaceCandidate, error) {
	out := []ports.PlaceCandidate{}
	for _, c := range s.Candidates {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(keyword)) {
			out = append(out, c)
		}
	}
	return out, nil
}
