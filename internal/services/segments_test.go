package services

import (
	"errors"
	"shipment-route-service/internal/domain"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSplitIntoSegments(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		maxPoints int
		want      [][]int
	}{
		{name: "fits in one", n: 5, maxPoints: 16, want: [][]int{{0, 1, 2, 3, 4}}},
		{name: "exactly max", n: 16, maxPoints: 16, want: [][]int{seq(16)}},
		{name: "one over max", n: 17, maxPoints: 16, want: [][]int{seq(16), {15, 16}}},
		{name: "pairs", n: 4, maxPoints: 2, want: [][]int{{0, 1}, {1, 2}, {2, 3}}},
		{name: "two points", n: 2, maxPoints: 16, want: [][]int{{0, 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitIntoSegments(seq(tc.n), tc.maxPoints)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d segments, got %d: %v", len(tc.want), len(got), got)
			}
			for i := range got {
				if len(got[i]) != len(tc.want[i]) {
					t.Fatalf("segment %d: expected %v, got %v", i, tc.want[i], got[i])
				}
				for j := range got[i] {
					if got[i][j] != tc.want[i][j] {
						t.Fatalf("segment %d: expected %v, got %v", i, tc.want[i], got[i])
					}
				}
			}
		})
	}
}

func TestSplitIntoSegmentsStitchesBackToInput(t *testing.T) {
	for n := 2; n <= 60; n++ {
		for _, maxPoints := range []int{2, 3, 5, 16} {
			points := seq(n)
			segments, err := SplitIntoSegments(points, maxPoints)
			if err != nil {
				t.Fatalf("n=%d max=%d: unexpected error: %v", n, maxPoints, err)
			}

			var stitched []int
			for i, s := range segments {
				if len(s) < 2 || len(s) > maxPoints {
					t.Fatalf("n=%d max=%d: segment %d has %d points", n, maxPoints, i, len(s))
				}
				if i > 0 {
					if s[0] != segments[i-1][len(segments[i-1])-1] {
						t.Fatalf("n=%d max=%d: segment %d does not start where %d ends", n, maxPoints, i, i-1)
					}
					s = s[1:]
				}
				stitched = append(stitched, s...)
			}

			if len(stitched) != n {
				t.Fatalf("n=%d max=%d: stitched %d points", n, maxPoints, len(stitched))
			}
			for i, v := range stitched {
				if v != i {
					t.Fatalf("n=%d max=%d: stitched[%d]=%d", n, maxPoints, i, v)
				}
			}
		}
	}
}

func TestSplitIntoSegmentsRejectsBadInput(t *testing.T) {
	if _, err := SplitIntoSegments(seq(1), 16); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for 1 point, got %v", err)
	}
	if _, err := SplitIntoSegments(seq(5), 1); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected invalid argument for maxPoints=1, got %v", err)
	}
}
