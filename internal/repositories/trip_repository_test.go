package repositories

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/entities"
)

func tempRepo(t *testing.T) (TripRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.json")
	return NewJSONFileTripRepository(path), path
}

func sampleTrips() []entities.Trip {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Trip{
		{
			ID:        uuid.New(),
			Name:      "Rome Trip",
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 5),
			Country:   "Italy",
			Activities: []entities.Activity{
				entities.NewActivity("Colosseum", "morning", start.Add(9*time.Hour), "Colosseum, Rome", entities.ActivityTypeActivity, ""),
				entities.NewActivity("Trattoria", "", start.Add(19*time.Hour), "Trastevere", entities.ActivityTypeRestaurant, entities.MealDinner),
			},
		},
	}
}

func TestLoadAllMissingFileReturnsEmpty(t *testing.T) {
	repo, _ := tempRepo(t)

	trips, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestLoadAllCorruptFileFailsOpen(t *testing.T) {
	repo, path := tempRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	trips, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := tempRepo(t)
	trips := sampleTrips()

	require.NoError(t, repo.SaveAll(trips))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, trips[0].ID, loaded[0].ID)
	assert.Equal(t, "Rome Trip", loaded[0].Name)
	assert.True(t, trips[0].StartDate.Equal(loaded[0].StartDate))
	require.Len(t, loaded[0].Activities, 2)
	assert.Equal(t, trips[0].Activities[1].ID, loaded[0].Activities[1].ID)
	assert.Equal(t, entities.MealDinner, loaded[0].Activities[1].MealType)
}

func TestSaveLoadSaveIsByteStable(t *testing.T) {
	repo, path := tempRepo(t)
	require.NoError(t, repo.SaveAll(sampleTrips()))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	require.NoError(t, repo.SaveAll(loaded))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveAllNilCollectionWritesEmptyDocument(t *testing.T) {
	repo, _ := tempRepo(t)
	require.NoError(t, repo.SaveAll(nil))

	loaded, err := repo.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestSaveAllLeavesNoTempFiles(t *testing.T) {
	repo, path := tempRepo(t)
	require.NoError(t, repo.SaveAll(sampleTrips()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
