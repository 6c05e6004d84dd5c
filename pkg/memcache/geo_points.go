// pkg/memcache/geo_points.go
package mem

import (
	"strings"
	"sync"
	"time"
)

// Point is a geocoded coordinate kept hot so repeated lookups of the
// same free-text location skip the network.
type Point struct {
	Lat float64
	Lng float64
}

type PointCache interface {
	Get(query string) (Point, bool)
	Set(query string, p Point, ttl time.Duration)
}

type entry struct {
	point     Point
	expiresAt time.Time
}

type GeoPoints struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewGeoPoints() *GeoPoints {
	return &GeoPoints{data: make(map[string]entry)}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func (s *GeoPoints) Get(query string) (Point, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[normalizeQuery(query)]
	if !ok || time.Now().After(e.expiresAt) {
		return Point{}, false
	}
	return e.point, true
}

func (s *GeoPoints) Set(query string, p Point, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[normalizeQuery(query)] = entry{
		point:     p,
		expiresAt: time.Now().Add(ttl),
	}
}
