package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shipment-route-service/internal/domain"
	"shipment-route-service/internal/platform/obs"
)

const optimizePath = "/api/path/optimize_path"

type optimizeRequest struct {
	XY          [][]float64 `json:"xy"`
	Temperature float64     `json:"temperature"`
	Sample      bool        `json:"sample"`
}

type optimizeResponse struct {
	Tour []int `json:"tour"`
}

// Client calls the tour-optimization service. It sends provider-frame
// coordinates and returns the service's ordering untouched.
type Client struct {
	session *http.Client
	baseURL string

	Temperature float64
	Sample      bool
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("optimizer base url is empty")
	}

	return &Client{
		session:     &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		Temperature: 1.0,
	}, nil
}

// OptimizeTour implements ports.TourOptimizer.
func (c *Client) OptimizeTour(ctx context.Context, points []domain.ProviderPoint) (_ []int, err error) {
	defer obs.Time(ctx, "optimizer.OptimizeTour")(&err)

	const op = "optimize tour"

	xy := make([][]float64, 0, len(points))
	for _, p := range points {
		xy = append(xy, p.CoordsToList())
	}

	payload, err := json.Marshal(optimizeRequest{XY: xy, Temperature: c.Temperature, Sample: c.Sample})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+optimizePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, &domain.ProviderError{
			Op:     op,
			Status: resp.Status,
			Info:   strings.TrimSpace(string(b)),
		}
	}

	var decoded optimizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.ProviderError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return decoded.Tour, nil
}
