package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	at := time.Date(2026, 6, 1, 23, 45, 12, 0, loc)
	start := StartOfDay(at)

	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, at.Day(), start.Day())
	assert.Equal(t, loc, start.Location())
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 6, 1, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestFormatRFC3339ZeroTimeIsEmpty(t *testing.T) {
	assert.Empty(t, FormatRFC3339(time.Time{}))
	assert.Equal(t, "2026-06-01T08:00:00Z", FormatRFC3339(time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)))
}

func TestParseFlexibleDate(t *testing.T) {
	full, err := ParseFlexibleDate("2026-06-01T08:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, full.Hour())

	bare, err := ParseFlexibleDate("2026-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, bare.Year())
	assert.Equal(t, time.June, bare.Month())
	assert.Equal(t, 1, bare.Day())

	_, err = ParseFlexibleDate("June 1st")
	assert.Error(t, err)
}
