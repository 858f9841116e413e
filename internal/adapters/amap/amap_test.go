package amap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"shipment-route-service/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", WithBaseURL(srv.URL), WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestDrivingBuildsRequestAndDecodesSteps(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/direction/driving" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}
		if q.Get("origin") != "120.000000,30.000000" {
			t.Errorf("origin = %q", q.Get("origin"))
		}
		if q.Get("destination") != "120.300000,30.300000" {
			t.Errorf("destination = %q", q.Get("destination"))
		}
		if q.Get("waypoints") != "120.100000,30.100000;120.200000,30.200000" {
			t.Errorf("waypoints = %q", q.Get("waypoints"))
		}

		w.Write([]byte(`{
			"status": "1",
			"info": "OK",
			"route": {"paths": [{
				"distance": "5230",
				"duration": "900",
				"steps": [
					{"polyline": "120.0,30.0;120.05,30.05"},
					{"polyline": "120.05,30.05;120.3,30.3"}
				]
			}]}
		}`))
	})

	path, err := c.Driving(
		context.Background(),
		domain.ProviderPoint{Lng: 120.0, Lat: 30.0},
		domain.ProviderPoint{Lng: 120.3, Lat: 30.3},
		[]domain.ProviderPoint{{Lng: 120.1, Lat: 30.1}, {Lng: 120.2, Lat: 30.2}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path.DistanceMeters != 5230 || path.DurationSeconds != 900 {
		t.Fatalf("metrics = %d m / %d s", path.DistanceMeters, path.DurationSeconds)
	}
	if len(path.Steps) != 2 || len(path.Steps[0]) != 2 || len(path.Steps[1]) != 2 {
		t.Fatalf("unexpected steps: %+v", path.Steps)
	}
	if path.Steps[1][1] != (domain.ProviderPoint{Lng: 120.3, Lat: 30.3}) {
		t.Fatalf("last point = %+v", path.Steps[1][1])
	}
}

func TestDrivingOmitsEmptyWaypoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["waypoints"]; ok {
			t.Errorf("waypoints should be omitted")
		}
		w.Write([]byte(`{"status":"1","route":{"paths":[{"steps":[]}]}}`))
	})

	if _, err := c.Driving(context.Background(), domain.ProviderPoint{}, domain.ProviderPoint{Lng: 1}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDrivingNonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","info":"INVALID_USER_KEY","infocode":"10001"}`))
	})

	_, err := c.Driving(context.Background(), domain.ProviderPoint{}, domain.ProviderPoint{Lng: 1}, nil)

	var pe *domain.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Status != "0" || pe.Info != "INVALID_USER_KEY" {
		t.Fatalf("unexpected provider error: %+v", pe)
	}
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("expected ErrProvider")
	}
}

func TestDrivingZeroPaths(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","route":{"paths":[]}}`))
	})

	_, err := c.Driving(context.Background(), domain.ProviderPoint{}, domain.ProviderPoint{Lng: 1}, nil)
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestDrivingRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"1","route":{"paths":[{"steps":[{"polyline":"1,2"}]}]}}`))
	})

	path, err := c.Driving(context.Background(), domain.ProviderPoint{}, domain.ProviderPoint{Lng: 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
	if len(path.Steps) != 1 {
		t.Fatalf("steps = %d", len(path.Steps))
	}
}

func TestDrivingClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad", http.StatusBadRequest)
	})

	_, err := c.Driving(context.Background(), domain.ProviderPoint{}, domain.ProviderPoint{Lng: 1}, nil)
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("calls = %d, want 1", calls.Load())
	}
}

func TestReverseGeocode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("location") != "120.155100,30.274100" {
			t.Errorf("location = %q", r.URL.Query().Get("location"))
		}
		w.Write([]byte(`{"status":"1","regeocode":{"formatted_address":"浙江省杭州市西湖区"}}`))
	})

	name, err := c.ReverseGeocode(context.Background(), domain.ProviderPoint{Lng: 120.1551, Lat: 30.2741})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "浙江省杭州市西湖区" {
		t.Fatalf("name = %q", name)
	}
}

func TestReverseGeocodeEmptyArrayAddress(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"1","regeocode":{"formatted_address":[]}}`))
	})

	name, err := c.ReverseGeocode(context.Background(), domain.ProviderPoint{Lng: 120, Lat: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "" {
		t.Fatalf("name = %q, want empty", name)
	}
}

func TestSearchPlacesDropsTipsWithoutLocation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("keywords") != "西湖" {
			t.Errorf("keywords = %q", r.URL.Query().Get("keywords"))
		}
		w.Write([]byte(`{"status":"1","tips":[
			{"name":"西湖","district":"浙江省杭州市西湖区","location":"120.141,30.259"},
			{"name":"西湖线","district":[],"location":[]},
			{"name":"西湖大道","district":[],"location":"120.17,30.25"}
		]}`))
	})

	got, err := c.SearchPlaces(context.Background(), "西湖")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got))
	}
	if got[0].District != "浙江省杭州市西湖区" || got[1].District != "" {
		t.Fatalf("unexpected districts: %+v", got)
	}
	if got[0].Point != (domain.ProviderPoint{Lng: 120.141, Lat: 30.259}) {
		t.Fatalf("unexpected point: %+v", got[0].Point)
	}
}

func TestSearchPlacesEmptyKeyword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request")
	})

	got, err := c.SearchPlaces(context.Background(), "  ")
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestParsePolyline(t *testing.T) {
	pts, err := ParsePolyline("116.1,39.9;116.2,39.95;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 2 || pts[1].Lat != 39.95 {
		t.Fatalf("unexpected points: %+v", pts)
	}

	if _, err := ParsePolyline("116.1;39.9"); err == nil || !strings.Contains(err.Error(), "missing comma") {
		t.Fatalf("expected missing comma error, got %v", err)
	}

	if pts, err := ParsePolyline(""); err != nil || len(pts) != 0 {
		t.Fatalf("empty polyline: %v %v", pts, err)
	}
}
