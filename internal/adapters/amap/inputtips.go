package amap

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
	"shipment-route-service/internal/ports"
)

type inputTipsResponse struct {
	envelope
	Tips []struct {
		Name     string          `json:"name"`
		District json.RawMessage `json:"district"`
		Location json.RawMessage `json:"location"`
	} `json:"tips"`
}

// SearchPlaces implements ports.PlaceSearcher using /v3/assistant/inputtips.
// Tips without a location (bus lines, categories) are dropped.
func (c *Client) SearchPlaces(ctx context.Context, keyword string) (_ []ports.PlaceCandidate, err error) {
	defer obs.Time(ctx, "amap.SearchPlaces")(&err)

	const op = "amap inputtips"

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []ports.PlaceCandidate{}, nil
	}

	params := url.Values{}
	params.Set("keywords", keyword)
	params.Set("datatype", "all")

	var decoded inputTipsResponse
	if err := c.getJSON(ctx, op, "/v3/assistant/inputtips", params, &decoded); err != nil {
		return nil, err
	}

	if !decoded.ok() {
		return nil, &domain.ProviderError{Op: op, Status: decoded.Status, Info: decoded.Info}
	}

	out := make([]ports.PlaceCandidate, 0, len(decoded.Tips))
	for _, tip := range decoded.Tips {
		loc := rawString(tip.Location)
		if loc == "" {
			continue
		}

		p, err := ParsePoint(loc)
		if err != nil {
			continue
		}

		out = append(out, ports.PlaceCandidate{
			Name:     tip.Name,
			District: rawString(tip.District),
			Point:    p,
		})
	}

	return out, nil
}
