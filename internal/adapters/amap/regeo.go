package amap

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
)

type regeoResponse struct {
	envelope
	Regeocode struct {
		// A string, or [] when AMap has nothing for the location.
		FormattedAddress json.RawMessage `json:"formatted_address"`
	} `json:"regeocode"`
}

// ReverseGeocode implements ports.ReverseGeocoder using /v3/geocode/regeo.
// An empty address with a success status is returned as "" and a nil error.
func (c *Client) ReverseGeocode(ctx context.Context, p domain.ProviderPoint) (_ string, err error) {
	defer obs.Time(ctx, "amap.ReverseGeocode")(&err)

	const op = "amap regeo"

	params := url.Values{}
	params.Set("location", FormatPoint(p))
	params.Set("extensions", "base")

	var decoded regeoResponse
	if err := c.getJSON(ctx, op, "/v3/geocode/regeo", params, &decoded); err != nil {
		return "", err
	}

	if !decoded.ok() {
		return "", &domain.ProviderError{Op: op, Status: decoded.Status, Info: decoded.Info}
	}

	return rawString(decoded.Regeocode.FormattedAddress), nil
}

// rawString returns the JSON string in raw, or "" for any other JSON value.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
