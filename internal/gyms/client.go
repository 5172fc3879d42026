// Package gyms looks up fitness centers near a coordinate through the
// Google Places nearby-search API. The service is consumed as a black box;
// only the fields the UI renders are decoded.
package gyms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"flexzone/fitness-platform/internal/config"
)

const (
	// Search radius bounds, in meters, matching the UI slider.
	MinRadiusMeters = 500
	MaxRadiusMeters = 5000

	defaultTimeout = 10 * time.Second
)

var ErrUpstream = errors.New("places API request failed")

// Gym is one nearby fitness center.
type Gym struct {
	Name         string  `json:"name"`
	Vicinity     string  `json:"vicinity"`
	Rating       float64 `json:"rating,omitempty"`
	RatingsTotal int     `json:"userRatingsTotal,omitempty"`
	OpenNow      *bool   `json:"openNow,omitempty"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

// Finder is the contract the API layer depends on.
type Finder interface {
	Search(ctx context.Context, lat, lng float64, radiusMeters int) ([]Gym, error)
}

// Client implements Finder against the Places nearby-search endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Places client from config.
func NewClient(cfg config.MapsConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type placesResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Results      []struct {
		Name             string  `json:"name"`
		Vicinity         string  `json:"vicinity"`
		Rating           float64 `json:"rating"`
		UserRatingsTotal int     `json:"user_ratings_total"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		OpeningHours *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
}

// Search finds gyms around (lat, lng). The radius is clamped to the
// supported slider range before the request is made.
func (c *Client) Search(ctx context.Context, lat, lng float64, radiusMeters int) ([]Gym, error) {
	radiusMeters = ClampRadius(radiusMeters)

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("type", "gym")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("%w: %s %s", ErrUpstream, decoded.Status, decoded.ErrorMessage)
	}

	gyms := make([]Gym, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		g := Gym{
			Name:         r.Name,
			Vicinity:     r.Vicinity,
			Rating:       r.Rating,
			RatingsTotal: r.UserRatingsTotal,
			Lat:          r.Geometry.Location.Lat,
			Lng:          r.Geometry.Location.Lng,
		}
		if r.OpeningHours != nil {
			open := r.OpeningHours.OpenNow
			g.OpenNow = &open
		}
		gyms = append(gyms, g)
	}
	return gyms, nil
}

// ClampRadius bounds a requested radius to [MinRadiusMeters, MaxRadiusMeters].
func ClampRadius(radius int) int {
	if radius < MinRadiusMeters {
		return MinRadiusMeters
	}
	if radius > MaxRadiusMeters {
		return MaxRadiusMeters
	}
	return radius
}
