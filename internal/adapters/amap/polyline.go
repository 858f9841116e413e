package amap

import (
	"fmt"
	"strconv"
	"strings"

	"shipment-route-service/internal/domain"
)

// FormatPoint renders a point as "lng,lat" with AMap's six-decimal precision.
func FormatPoint(p domain.ProviderPoint) string {
	return strconv.FormatFloat(p.Lng, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}

// FormatPoints joins points with ";" as used by the waypoints parameter.
func FormatPoints(points []domain.ProviderPoint) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, FormatPoint(p))
	}
	return strings.Join(parts, ";")
}

// ParsePoint parses a single "lng,lat" pair.
func ParsePoint(s string) (domain.ProviderPoint, error) {
	lngStr, latStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return domain.ProviderPoint{}, fmt.Errorf("parse point %q: missing comma", s)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return domain.ProviderPoint{}, fmt.Errorf("parse point %q: longitude: %w", s, err)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return domain.ProviderPoint{}, fmt.Errorf("parse point %q: latitude: %w", s, err)
	}

	return domain.ProviderPoint{Lng: lng, Lat: lat}, nil
}

// ParsePolyline decodes a "lng,lat;lng,lat;..." step polyline. Empty input
// yields an empty slice.
func ParsePolyline(s string) ([]domain.ProviderPoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []domain.ProviderPoint{}, nil
	}

	parts := strings.Split(s, ";")
	out := make([]domain.ProviderPoint, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePoint(part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
