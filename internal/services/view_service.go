package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/models/entities"
	"wayfarer/pkg/utils"
)

// Pure functions over activity snapshots. Nothing here mutates its
// input; the trip service owns mutation.

// DayGroup is one calendar day of the itinerary with its activities in
// insertion order.
type DayGroup struct {
	Day        time.Time
	Activities []entities.Activity
}

// GroupByDay buckets activities by start-of-day and returns the groups
// sorted ascending. Within a day the source order is preserved; grouping
// never re-sorts by time-of-day.
func GroupByDay(activities []entities.Activity) []DayGroup {
	byDay := make(map[int64]*DayGroup)
	order := make([]int64, 0)

	for _, a := range activities {
		day := utils.StartOfDay(a.Date)
		key := day.Unix()
		group, ok := byDay[key]
		if !ok {
			group = &DayGroup{Day: day}
			byDay[key] = group
			order = append(order, key)
		}
		group.Activities = append(group.Activities, a)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	groups := make([]DayGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byDay[key])
	}
	return groups
}

// FilterBySearchText keeps activities whose name contains text,
// case-insensitively. Empty text is a pass-through.
func FilterBySearchText(activities []entities.Activity, text string) []entities.Activity {
	if strings.TrimSpace(text) == "" {
		return activities
	}
	needle := strings.ToLower(text)
	out := make([]entities.Activity, 0, len(activities))
	for _, a := range activities {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			out = append(out, a)
		}
	}
	return out
}

// FilterByCategory keeps activities whose type is in selected. An empty
// selection means "no filter", not "match nothing" — otherwise the
// default screen state would be empty.
func FilterByCategory(activities []entities.Activity, selected []entities.ActivityType) []entities.Activity {
	if len(selected) == 0 {
		return activities
	}
	wanted := make(map[entities.ActivityType]bool, len(selected))
	for _, t := range selected {
		wanted[t] = true
	}
	out := make([]entities.Activity, 0, len(activities))
	for _, a := range activities {
		if wanted[a.Type] {
			out = append(out, a)
		}
	}
	return out
}

// FilterByDate keeps activities on the same calendar day as date. A nil
// date is a pass-through.
func FilterByDate(activities []entities.Activity, date *time.Time) []entities.Activity {
	if date == nil {
		return activities
	}
	out := make([]entities.Activity, 0, len(activities))
	for _, a := range activities {
		if utils.SameDay(a.Date, *date) {
			out = append(out, a)
		}
	}
	return out
}

// BuildDayView composes the filters in their fixed order (text, then
// category, then date) and groups the result by day.
func BuildDayView(activities []entities.Activity, text string, selected []entities.ActivityType, date *time.Time) []DayGroup {
	filtered := FilterByDate(FilterByCategory(FilterBySearchText(activities, text), selected), date)
	return GroupByDay(filtered)
}

// ReorderTarget is a drop destination: another activity (insert before
// it) or a bare day (append to the end of that day's group).
type ReorderTarget struct {
	ActivityID *uuid.UUID
	Day        *time.Time
}

// ReorderActivities splices the moved activity to its new position and
// retargets its date, preserving the relative order of everything else.
// The returned slice is freshly allocated.
func ReorderActivities(list []entities.Activity, movedID uuid.UUID, target ReorderTarget) ([]entities.Activity, error) {
	movedIdx := -1
	for i, a := range list {
		if a.ID == movedID {
			movedIdx = i
			break
		}
	}
	if movedIdx < 0 {
		return nil, utils.ErrActivityNotFound
	}

	moved := list[movedIdx]
	rest := make([]entities.Activity, 0, len(list)-1)
	rest = append(rest, list[:movedIdx]...)
	rest = append(rest, list[movedIdx+1:]...)

	switch {
	case target.ActivityID != nil:
		targetIdx := -1
		for i, a := range rest {
			if a.ID == *target.ActivityID {
				targetIdx = i
				break
			}
		}
		if targetIdx < 0 {
			return nil, utils.ErrActivityNotFound
		}
		moved.Date = utils.StartOfDay(rest[targetIdx].Date)
		out := make([]entities.Activity, 0, len(list))
		out = append(out, rest[:targetIdx]...)
		out = append(out, moved)
		out = append(out, rest[targetIdx:]...)
		return out, nil

	case target.Day != nil:
		day := utils.StartOfDay(*target.Day)
		moved.Date = day

		// After the last activity already on that day; if the day is
		// empty, where it would sort chronologically.
		insertIdx := -1
		for i, a := range rest {
			if utils.SameDay(a.Date, day) {
				insertIdx = i + 1
			}
		}
		if insertIdx < 0 {
			insertIdx = len(rest)
			for i, a := range rest {
				if utils.StartOfDay(a.Date).After(day) {
					insertIdx = i
					break
				}
			}
		}
		out := make([]entities.Activity, 0, len(list))
		out = append(out, rest[:insertIdx]...)
		out = append(out, moved)
		out = append(out, rest[insertIdx:]...)
		return out, nil

	default:
		return nil, utils.ErrInvalidInput
	}
}
