package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	mem "wayfarer/pkg/memcache"

	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

type Coordinate struct {
	Lat float64
	Lng float64
}

type RouteEstimate struct {
	Mode            string
	DistanceMeters  int
	DurationSeconds int
}

// GeoServiceInterface resolves free-text activity locations to
// coordinates and estimates travel for a small fixed set of modes.
// A location with no result is a handled outcome, not a failure.
type GeoServiceInterface interface {
	Locate(ctx context.Context, place string) (*Coordinate, error)
	Routes(ctx context.Context, from, to Coordinate, modes []string) ([]RouteEstimate, error)
}

var routeProfiles = map[string]string{
	"driving": "driving",
	"walking": "walking",
	"cycling": "cycling",
}

// DefaultRouteModes is the order estimates come back in when the caller
// doesn't narrow the selection.
var DefaultRouteModes = []string{"driving", "walking", "cycling"}

type MapboxGeoClient struct {
	HTTP        *http.Client
	AccessToken string
	BaseURL     string
	Cache       mem.PointCache
	DefaultTTL  time.Duration
}

func NewMapboxGeoClient(cache mem.PointCache) *MapboxGeoClient {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		panic("MAPBOX_ACCESS_TOKEN is empty")
	}
	return &MapboxGeoClient{
		HTTP:        &http.Client{Timeout: 15 * time.Second},
		AccessToken: token,
		BaseURL:     "https://api.mapbox.com",
		Cache:       cache,
		DefaultTTL:  7 * 24 * time.Hour,
	}
}

// Locate geocodes a free-text place name. Hits are cached; activity
// locations rarely change and every map screen re-asks for them.
func (c *MapboxGeoClient) Locate(ctx context.Context, place string) (*Coordinate, error) {
	if place == "" {
		return nil, utils.ErrInvalidInput
	}

	if p, ok := c.Cache.Get(place); ok {
		return &Coordinate{Lat: p.Lat, Lng: p.Lng}, nil
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.BaseURL, url.PathEscape(place))
	q := url.Values{}
	q.Set("access_token", c.AccessToken)
	q.Set("limit", "1")

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox geocoding http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox geocoding bad status: %s", resp.Status)
	}

	var payload struct {
		Features []struct {
			Center []float64 `json:"center"` // [lng, lat]
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox geocoding decode: %w", err)
	}

	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return nil, utils.ErrPlaceNotFound
	}

	coord := Coordinate{
		Lng: payload.Features[0].Center[0],
		Lat: payload.Features[0].Center[1],
	}
	c.Cache.Set(place, mem.Point{Lat: coord.Lat, Lng: coord.Lng}, c.DefaultTTL)
	return &coord, nil
}

// Routes queries directions per mode. A mode with no viable route is
// dropped from the result; the caller renders whatever came back.
func (c *MapboxGeoClient) Routes(ctx context.Context, from, to Coordinate, modes []string) ([]RouteEstimate, error) {
	if len(modes) == 0 {
		modes = DefaultRouteModes
	}

	out := make([]RouteEstimate, 0, len(modes))
	for _, mode := range modes {
		profile, ok := routeProfiles[mode]
		if !ok {
			continue
		}

		est, err := c.routeForProfile(ctx, from, to, profile)
		if err != nil {
			logger.GetLogger().Debugw("no route for mode", "mode", mode, "error", err)
			continue
		}
		est.Mode = mode
		out = append(out, *est)
	}
	return out, nil
}

func (c *MapboxGeoClient) routeForProfile(ctx context.Context, from, to Coordinate, profile string) (*RouteEstimate, error) {
	coords := fmt.Sprintf("%f,%f;%f,%f", from.Lng, from.Lat, to.Lng, to.Lat)
	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/%s/%s", c.BaseURL, profile, coords)

	q := url.Values{}
	q.Set("access_token", c.AccessToken)
	q.Set("overview", "false")

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mapbox directions http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("mapbox directions bad status: %s", resp.Status)
	}

	var payload struct {
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("mapbox directions decode: %w", err)
	}
	if len(payload.Routes) == 0 {
		return nil, utils.ErrRouteUnavailable
	}

	return &RouteEstimate{
		DistanceMeters:  int(payload.Routes[0].Distance + 0.5),
		DurationSeconds: int(payload.Routes[0].Duration + 0.5),
	}, nil
}
