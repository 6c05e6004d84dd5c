package utils

import "time"

// StartOfDay truncates to midnight in the time's own location. Grouping
// and day comparisons all go through this so "same day" means the same
// thing everywhere.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// ParseFlexibleDate accepts RFC3339 timestamps or bare calendar dates.
// Generated plans are inconsistent about which one they emit.
func ParseFlexibleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
