package services

import "shipment-route-service/internal/domain"

// SplitIntoSegments chunks points into chained segments of at most maxPoints
// points each. Every segment after the first starts with the last point of
// the previous one, so dropping that shared point while concatenating
// reproduces the input.
func SplitIntoSegments[P any](points []P, maxPoints int) ([][]P, error) {
	if maxPoints < 2 {
		return nil, domain.InvalidArgument("split into segments: maxPoints must be at least 2, got %d", maxPoints)
	}
	if len(points) < 2 {
		return nil, domain.InvalidArgument("split into segments: need at least 2 points, got %d", len(points))
	}

	// Each full segment advances the cursor by maxPoints-1.
	segments := make([][]P, 0, (len(points)-1+maxPoints-2)/(maxPoints-1))

	cursor := 0
	for len(points)-cursor > maxPoints {
		end := cursor + maxPoints
		segments = append(segments, points[cursor:end:end])
		cursor = end - 1
	}
	segments = append(segments, points[cursor:len(points):len(points)])

	return segments, nil
}
