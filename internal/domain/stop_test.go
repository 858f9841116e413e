package domain

import (
	"errors"
	"testing"
)

func stopNames(stops []Stop) []string {
	out := make([]string, 0, len(stops))
	for _, s := range stops {
		out = append(out, s.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func checkSequence(t *testing.T, stops []Stop) {
	t.Helper()
	for i, s := range stops {
		if s.Sequence != i+1 {
			t.Fatalf("stop %q sequence = %d, want %d", s.Name, s.Sequence, i+1)
		}
	}
}

func testStops() []Stop {
	return []Stop{
		{Name: "A", Sequence: 1},
		{Name: "B", Sequence: 2},
		{Name: "C", Sequence: 3},
		{Name: "D", Sequence: 4},
	}
}

func TestApplyTour(t *testing.T) {
	got, err := ApplyTour(testStops(), []int{2, 0, 3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"C", "A", "D", "B"}; !equalStrings(stopNames(got), want) {
		t.Fatalf("order = %v, want %v", stopNames(got), want)
	}
	checkSequence(t, got)
}

func TestApplyTourRejectsInvalidPermutation(t *testing.T) {
	cases := map[string][]int{
		"short":    {0, 1, 2},
		"repeated": {0, 1, 1, 2},
		"range":    {0, 1, 2, 4},
		"negative": {0, 1, 2, -1},
	}

	for name, tour := range cases {
		if _, err := ApplyTour(testStops(), tour); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestReorder(t *testing.T) {
	stops := testStops()

	got, err := Reorder(stops, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"B", "C", "A", "D"}; !equalStrings(stopNames(got), want) {
		t.Fatalf("order = %v, want %v", stopNames(got), want)
	}
	checkSequence(t, got)

	got, err = Reorder(stops, 3, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"D", "A", "B", "C"}; !equalStrings(stopNames(got), want) {
		t.Fatalf("order = %v, want %v", stopNames(got), want)
	}

	// input must not be mutated
	if want := []string{"A", "B", "C", "D"}; !equalStrings(stopNames(stops), want) {
		t.Fatalf("input mutated: %v", stopNames(stops))
	}

	if _, err := Reorder(stops, 0, 4); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	got, err := Remove(testStops(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "C", "D"}; !equalStrings(stopNames(got), want) {
		t.Fatalf("order = %v, want %v", stopNames(got), want)
	}
	checkSequence(t, got)

	if _, err := Remove(got, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&ProviderError{Op: "driving", Err: cause})

	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Op != "driving" {
		t.Fatalf("errors.As failed: %v", err)
	}
}
