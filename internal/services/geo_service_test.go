package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "wayfarer/pkg/memcache"
	"wayfarer/pkg/utils"
)

func newTestGeoClient(server *httptest.Server) *MapboxGeoClient {
	return &MapboxGeoClient{
		HTTP:        server.Client(),
		AccessToken: "test-token",
		BaseURL:     server.URL,
		Cache:       mem.NewGeoPoints(),
		DefaultTTL:  time.Hour,
	}
}

func TestLocateReturnsCoordinate(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.True(t, strings.HasPrefix(r.URL.Path, "/geocoding/v5/mapbox.places/"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"features":[{"center":[12.4922,41.8902]}]}`))
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	coord, err := client.Locate(context.Background(), "Colosseum, Rome")
	require.NoError(t, err)
	assert.InDelta(t, 41.8902, coord.Lat, 1e-6)
	assert.InDelta(t, 12.4922, coord.Lng, 1e-6)
	assert.Equal(t, 1, requests)
}

func TestLocateCachesHits(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"features":[{"center":[12.4922,41.8902]}]}`))
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	_, err := client.Locate(context.Background(), "Colosseum, Rome")
	require.NoError(t, err)
	_, err = client.Locate(context.Background(), "Colosseum, Rome")
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
}

func TestLocateNoFeaturesIsPlaceNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	_, err := client.Locate(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)

	_, err = client.Locate(context.Background(), "")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRoutesQueriesEachMode(t *testing.T) {
	var profiles []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		// /directions/v5/mapbox/<profile>/<coords>
		profiles = append(profiles, parts[4])
		w.Write([]byte(`{"routes":[{"distance":1500.4,"duration":620.7}]}`))
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	from := Coordinate{Lat: 41.8902, Lng: 12.4922}
	to := Coordinate{Lat: 41.9029, Lng: 12.4534}

	estimates, err := client.Routes(context.Background(), from, to, nil)
	require.NoError(t, err)

	require.Len(t, estimates, 3)
	assert.Equal(t, DefaultRouteModes, profiles)
	assert.Equal(t, "driving", estimates[0].Mode)
	assert.Equal(t, 1500, estimates[0].DistanceMeters)
	assert.Equal(t, 621, estimates[0].DurationSeconds)
}

func TestRoutesDropsFailedModes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/cycling/") {
			w.Write([]byte(`{"routes":[]}`))
			return
		}
		w.Write([]byte(`{"routes":[{"distance":100,"duration":60}]}`))
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	estimates, err := client.Routes(context.Background(), Coordinate{}, Coordinate{}, []string{"walking", "cycling"})
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.Equal(t, "walking", estimates[0].Mode)
}

func TestRoutesIgnoresUnknownModes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for unknown modes")
	}))
	defer server.Close()

	client := newTestGeoClient(server)

	estimates, err := client.Routes(context.Background(), Coordinate{}, Coordinate{}, []string{"teleport"})
	require.NoError(t, err)
	assert.Empty(t, estimates)
}
