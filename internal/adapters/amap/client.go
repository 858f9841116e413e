package amap

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://restapi.amap.com"

// Client talks to the AMap web service API (directions, reverse geocoding,
// input tips). All coordinates it sends and receives are in the provider
// frame; callers convert.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string

	// Strategy is the driving strategy code sent with direction requests.
	Strategy string
}

type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTimeout bounds every single HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.session.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.session = h }
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("AMap api key is empty")
	}

	c := &Client{
		session:  &http.Client{Timeout: 10 * time.Second},
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		Strategy: "0",
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// envelope is the status block shared by every AMap v3 response.
type envelope struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	InfoCode string `json:"infocode"`
}

func (e envelope) ok() bool { return e.Status == "1" }
