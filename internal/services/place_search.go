package services

import (
	"context"
	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
	"strings"
)

// PlaceSearch answers free-text place lookups in the display frame.
type PlaceSearch struct {
	Searcher ports.PlaceSearcher
}

func NewPlaceSearch(searcher ports.PlaceSearcher) *PlaceSearch {
	return &PlaceSearch{Searcher: searcher}
}

// Search returns the candidates for keyword. A blank keyword or a failed
// lookup yields an empty list.
func (s *PlaceSearch) Search(ctx context.Context, keyword string) []domain.Place {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []domain.Place{}
	}

	candidates, err := s.Searcher.SearchPlaces(ctx, keyword)
	if err != nil {
		obs.Logger(ctx).WithError(err).WithField("keyword", keyword).Warn("place search failed")
		return []domain.Place{}
	}

	places := make([]domain.Place, 0, len(candidates))
	for _, c := range candidates {
		places = append(places, domain.Place{
			Name:     c.Name,
			District: c.District,
			Point:    domain.ToDisplayFrame(c.Point),
		})
	}
	return places
}
