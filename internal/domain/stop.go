package domain

import "fmt"

// Stop is a tour point in the display frame. Sequence is its 1-based position
// in the current tour order; Name is filled lazily by reverse geocoding.
type Stop struct {
	Point    DisplayPoint `json:"point"`
	Name     string       `json:"name"`
	Sequence int          `json:"sequence"`
}

// NewStops builds stops from points in the given order.
func NewStops(points []DisplayPoint) []Stop {
	stops := make([]Stop, 0, len(points))
	for i, p := range points {
		stops = append(stops, Stop{Point: p, Sequence: i + 1})
	}
	return stops
}

// Resequence recomputes every stop's Sequence from its slice position.
func Resequence(stops []Stop) {
	for i := range stops {
		stops[i].Sequence = i + 1
	}
}

// Points returns the display-frame points of stops, in order.
func Points(stops []Stop) []DisplayPoint {
	out := make([]DisplayPoint, 0, len(stops))
	for _, s := range stops {
		out = append(out, s.Point)
	}
	return out
}

// ApplyTour returns a copy of stops reordered by tour, a permutation of
// stop indices as produced by the tour optimizer.
func ApplyTour(stops []Stop, tour []int) ([]Stop, error) {
	if len(tour) != len(stops) {
		return nil, InvalidArgument("apply tour: tour has %d indices for %d stops", len(tour), len(stops))
	}

	seen := make([]bool, len(stops))
	out := make([]Stop, 0, len(stops))
	for _, idx := range tour {
		if idx < 0 || idx >= len(stops) {
			return nil, InvalidArgument("apply tour: index %d out of range", idx)
		}
		if seen[idx] {
			return nil, InvalidArgument("apply tour: index %d repeated", idx)
		}
		seen[idx] = true
		out = append(out, stops[idx])
	}

	Resequence(out)
	return out, nil
}

// Reorder moves the stop at from to position to, the way a drag-and-drop
// list does, and returns the resequenced copy.
func Reorder(stops []Stop, from, to int) ([]Stop, error) {
	if from < 0 || from >= len(stops) || to < 0 || to >= len(stops) {
		return nil, fmt.Errorf("reorder stops: %w: move %d -> %d of %d", ErrInvalidArgument, from, to, len(stops))
	}

	out := make([]Stop, 0, len(stops))
	out = append(out, stops...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Stop{moved}, out[to:]...)...)

	Resequence(out)
	return out, nil
}

// Remove drops the stop at index i and returns the resequenced copy.
func Remove(stops []Stop, i int) ([]Stop, error) {
	if i < 0 || i >= len(stops) {
		return nil, fmt.Errorf("remove stop: %w: index %d of %d", ErrInvalidArgument, i, len(stops))
	}

	out := make([]Stop, 0, len(stops)-1)
	out = append(out, stops[:i]...)
	out = append(out, stops[i+1:]...)

	Resequence(out)
	return out, nil
}
