package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
)

func mustRestaurant(t *testing.T, name, hours string) openhours.Restaurant {
	t.Helper()
	r, err := openhours.ParseRecord([]string{name, hours})
	require.NoError(t, err)
	return r
}

func fixtureRestaurants(t *testing.T) []openhours.Restaurant {
	return []openhours.Restaurant{
		mustRestaurant(t, "Burger Bar", "Mon,Tue,Wed,Thu,Sun|11:00-22:00;Fri,Sat|11:00-0:00"),
		mustRestaurant(t, "Night Owl", "Sat|20:00-04:00;Sun|10:00-14:00"),
		mustRestaurant(t, "Tea Room", "Tue|16:00-20:00"),
		mustRestaurant(t, "Sunday Late", "Sun|22:00-02:30"),
		mustRestaurant(t, "Closed Sundays", ""),
	}
}

func names(rs []openhours.Restaurant) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestMemoryListOpen(t *testing.T) {
	repo := NewRestaurantMemoryRepository(fixtureRestaurants(t))
	ctx := context.Background()

	cases := []struct {
		day  openhours.Day
		at   openhours.Clock
		want []string
	}{
		{openhours.Tuesday, openhours.ClockAt(16, 0), []string{"Burger Bar", "Tea Room"}},
		{openhours.Tuesday, openhours.ClockAt(20, 1), []string{"Burger Bar"}},
		{openhours.Saturday, openhours.ClockAt(3, 0), []string{}},
		{openhours.Sunday, openhours.ClockAt(3, 0), []string{"Night Owl"}},
		{openhours.Sunday, openhours.ClockAt(5, 0), []string{}},
		{openhours.Sunday, openhours.ClockAt(12, 0), []string{"Burger Bar", "Night Owl"}},
		{openhours.Monday, openhours.ClockAt(1, 0), []string{"Sunday Late"}},
		{openhours.Saturday, openhours.Midnight, []string{"Burger Bar"}},
	}
	for _, tc := range cases {
		got, err := repo.ListOpen(ctx, tc.day, tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, names(got), "%s %s", tc.day, tc.at)
	}
}

func TestMemoryReplace(t *testing.T) {
	repo := NewRestaurantMemoryRepository(nil)
	assert.Empty(t, repo.All())

	in := fixtureRestaurants(t)
	repo.Replace(in)
	in[0].Name = "mutated"

	assert.Len(t, repo.All(), 5)
	assert.Equal(t, "Burger Bar", repo.All()[0].Name)
}

func TestMemoryListOpenCancelled(t *testing.T) {
	repo := NewRestaurantMemoryRepository(fixtureRestaurants(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListOpen(ctx, openhours.Monday, openhours.ClockAt(12, 0))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestModelRoundTrip(t *testing.T) {
	r := mustRestaurant(t, "Burger Bar", "Mon,Tue|11:00-22:00;Fri|11:00-0:00")
	r.ID = 7

	m := toModel(r)
	require.Len(t, m.OpenHours, 3)
	assert.Equal(t, "MONDAY", m.OpenHours[0].DayOfWeek)
	assert.Equal(t, 660, m.OpenHours[0].StartTimeMinuteOfDay)
	assert.Equal(t, 1320, m.OpenHours[0].EndTimeMinuteOfDay)
	assert.Equal(t, "FRIDAY", m.OpenHours[2].DayOfWeek)
	assert.Equal(t, 0, m.OpenHours[2].EndTimeMinuteOfDay)

	back, err := toDomain(m)
	require.NoError(t, err)
	assert.Equal(t, r, back)

	m.OpenHours[1].DayOfWeek = "HOLIDAY"
	_, err = toDomain(m)
	assert.Error(t, err)
}
