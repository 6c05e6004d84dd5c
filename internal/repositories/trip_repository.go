// internal/repositories/trip_repository.go
package repositories

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"wayfarer/internal/models/entities"
	"wayfarer/pkg/logger"
)

// TripRepository is the persistence bridge: the whole trip collection is
// one opaque JSON document, loaded on start and overwritten on every
// mutation. There is no incremental save.
type TripRepository interface {
	LoadAll() ([]entities.Trip, error)
	SaveAll(trips []entities.Trip) error
}

type jsonFileTripRepository struct {
	path string
	mu   sync.Mutex
}

func NewJSONFileTripRepository(path string) TripRepository {
	return &jsonFileTripRepository{path: path}
}

// LoadAll fails open: a missing or corrupt document yields an empty
// collection, never an error past this boundary. The caller may choose
// to seed example data.
func (r *jsonFileTripRepository) LoadAll() ([]entities.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.GetLogger().Warnw("failed to read trips document, starting empty", "path", r.path, "error", err)
		}
		return []entities.Trip{}, nil
	}

	var trips []entities.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		logger.GetLogger().Warnw("trips document is corrupt, starting empty", "path", r.path, "error", err)
		return []entities.Trip{}, nil
	}
	if trips == nil {
		trips = []entities.Trip{}
	}
	return trips, nil
}

// SaveAll serializes the full collection and replaces the document
// atomically via a temp file in the same directory.
func (r *jsonFileTripRepository) SaveAll(trips []entities.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if trips == nil {
		trips = []entities.Trip{}
	}

	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "trips-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, r.path)
}
