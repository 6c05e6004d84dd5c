package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/entities"
	"wayfarer/pkg/utils"
)

var (
	day0 = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	day1 = day0.AddDate(0, 0, 1)
	day2 = day0.AddDate(0, 0, 2)
)

func act(name string, date time.Time, typ entities.ActivityType, meal entities.MealType) entities.Activity {
	return entities.NewActivity(name, "", date, name+" location", typ, meal)
}

func flatten(groups []DayGroup) []entities.Activity {
	var out []entities.Activity
	for _, g := range groups {
		out = append(out, g.Activities...)
	}
	return out
}

func TestGroupByDaySortsDaysAndKeepsInsertionOrder(t *testing.T) {
	late := act("evening walk", day1.Add(20*time.Hour), entities.ActivityTypeActivity, "")
	early := act("breakfast", day1.Add(8*time.Hour), entities.ActivityTypeRestaurant, entities.MealBreakfast)
	first := act("arrival", day0.Add(18*time.Hour), entities.ActivityTypeActivity, "")

	groups := GroupByDay([]entities.Activity{late, early, first})

	require.Len(t, groups, 2)
	assert.True(t, groups[0].Day.Equal(day0))
	assert.True(t, groups[1].Day.Equal(day1))
	// Insertion order within the day, not time-of-day order.
	require.Len(t, groups[1].Activities, 2)
	assert.Equal(t, "evening walk", groups[1].Activities[0].Name)
	assert.Equal(t, "breakfast", groups[1].Activities[1].Name)
}

func TestGroupByDayIsIdempotent(t *testing.T) {
	activities := []entities.Activity{
		act("a", day1.Add(9*time.Hour), entities.ActivityTypeActivity, ""),
		act("b", day0.Add(9*time.Hour), entities.ActivityTypeActivity, ""),
		act("c", day1.Add(7*time.Hour), entities.ActivityTypeRestaurant, entities.MealBreakfast),
	}

	once := GroupByDay(activities)
	twice := GroupByDay(flatten(once))
	assert.Equal(t, once, twice)
}

func TestFilterBySearchTextEmptyIsPassThrough(t *testing.T) {
	activities := []entities.Activity{
		act("Vatican Museum", day0, entities.ActivityTypeActivity, ""),
		act("Trattoria", day0, entities.ActivityTypeRestaurant, entities.MealDinner),
	}

	assert.Equal(t, activities, FilterBySearchText(activities, ""))
	assert.Equal(t, activities, FilterBySearchText(activities, "   "))
}

func TestFilterBySearchTextIsCaseInsensitiveSubstring(t *testing.T) {
	museum := act("Vatican Museum", day0, entities.ActivityTypeActivity, "")
	dinner := act("Trattoria", day0, entities.ActivityTypeRestaurant, entities.MealDinner)

	out := FilterBySearchText([]entities.Activity{museum, dinner}, "vatican")
	require.Len(t, out, 1)
	assert.Equal(t, museum.ID, out[0].ID)
}

func TestFilterByCategoryEmptySelectionIsPassThrough(t *testing.T) {
	a1 := act("walk", day0, entities.ActivityTypeActivity, "")
	a2 := act("dinner", day0, entities.ActivityTypeRestaurant, entities.MealDinner)
	activities := []entities.Activity{a1, a2}

	assert.Equal(t, activities, FilterByCategory(activities, nil))

	out := FilterByCategory(activities, []entities.ActivityType{entities.ActivityTypeRestaurant})
	require.Len(t, out, 1)
	assert.Equal(t, a2.ID, out[0].ID)
}

func TestFilterByDate(t *testing.T) {
	a1 := act("walk", day0.Add(10*time.Hour), entities.ActivityTypeActivity, "")
	a2 := act("dinner", day1.Add(19*time.Hour), entities.ActivityTypeRestaurant, entities.MealDinner)
	activities := []entities.Activity{a1, a2}

	assert.Equal(t, activities, FilterByDate(activities, nil))

	filterAt := day1.Add(3 * time.Hour)
	out := FilterByDate(activities, &filterAt)
	require.Len(t, out, 1)
	assert.Equal(t, a2.ID, out[0].ID)
}

func TestBuildDayViewComposesFilters(t *testing.T) {
	walk := act("morning walk", day0.Add(9*time.Hour), entities.ActivityTypeActivity, "")
	dinner := act("dinner at Trattoria", day0.Add(19*time.Hour), entities.ActivityTypeRestaurant, entities.MealDinner)
	lunch := act("lunch stop", day1.Add(12*time.Hour), entities.ActivityTypeRestaurant, entities.MealLunch)

	groups := BuildDayView(
		[]entities.Activity{walk, dinner, lunch},
		"",
		[]entities.ActivityType{entities.ActivityTypeRestaurant},
		nil)

	require.Len(t, groups, 2)
	require.Len(t, groups[0].Activities, 1)
	assert.Equal(t, dinner.ID, groups[0].Activities[0].ID)
	require.Len(t, groups[1].Activities, 1)
	assert.Equal(t, lunch.ID, groups[1].Activities[0].ID)
}

func TestReorderOntoActivityInsertsBeforeAndRetargetsDay(t *testing.T) {
	a1 := act("a1", day0.Add(9*time.Hour), entities.ActivityTypeActivity, "")
	a2 := act("a2", day0.Add(12*time.Hour), entities.ActivityTypeActivity, "")
	a3 := act("a3", day1.Add(9*time.Hour), entities.ActivityTypeActivity, "")

	out, err := ReorderActivities([]entities.Activity{a1, a2, a3}, a3.ID, ReorderTarget{ActivityID: &a1.ID})
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, a3.ID, out[0].ID)
	assert.Equal(t, a1.ID, out[1].ID)
	assert.Equal(t, a2.ID, out[2].ID)
	assert.True(t, out[0].Date.Equal(day0))
}

func TestReorderOntoDaySectionAppendsToThatDay(t *testing.T) {
	a1 := act("a1", day0.Add(9*time.Hour), entities.ActivityTypeActivity, "")
	a2 := act("a2", day1.Add(12*time.Hour), entities.ActivityTypeRestaurant, entities.MealDinner)
	a3 := act("a3", day1.Add(15*time.Hour), entities.ActivityTypeActivity, "")

	out, err := ReorderActivities([]entities.Activity{a1, a2, a3}, a2.ID, ReorderTarget{Day: &day0})
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, a1.ID, out[0].ID)
	assert.Equal(t, a2.ID, out[1].ID)
	assert.Equal(t, a3.ID, out[2].ID)
	assert.True(t, out[1].Date.Equal(day0))
	// Siblings keep their own days.
	assert.True(t, utils.SameDay(out[2].Date, day1))
}

func TestReorderOntoEmptyDayInsertsChronologically(t *testing.T) {
	a1 := act("a1", day0.Add(9*time.Hour), entities.ActivityTypeActivity, "")
	a2 := act("a2", day2.Add(9*time.Hour), entities.ActivityTypeActivity, "")
	a3 := act("a3", day2.Add(12*time.Hour), entities.ActivityTypeActivity, "")

	out, err := ReorderActivities([]entities.Activity{a1, a2, a3}, a3.ID, ReorderTarget{Day: &day1})
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, a1.ID, out[0].ID)
	assert.Equal(t, a3.ID, out[1].ID)
	assert.Equal(t, a2.ID, out[2].ID)
	assert.True(t, out[1].Date.Equal(day1))
}

func TestReorderUnknownIDsFail(t *testing.T) {
	a1 := act("a1", day0, entities.ActivityTypeActivity, "")
	missing := uuid.New()

	_, err := ReorderActivities([]entities.Activity{a1}, missing, ReorderTarget{Day: &day0})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	_, err = ReorderActivities([]entities.Activity{a1}, a1.ID, ReorderTarget{ActivityID: &missing})
	assert.ErrorIs(t, err, utils.ErrActivityNotFound)

	_, err = ReorderActivities([]entities.Activity{a1}, a1.ID, ReorderTarget{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
