package openhours

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyScheduleIsAValue(t *testing.T) {
	a := mustParse(t, "Mon|09:00-17:00")
	b := a.with(Tuesday, Interval{Start: 60, End: 120})

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
	_, ok := a.On(Tuesday)
	assert.False(t, ok)
}

func TestWeeklyScheduleRowsInWeekOrder(t *testing.T) {
	s := mustParse(t, "Sun|10:00-11:00;Mon|12:00-13:00;Thu|14:00-15:00")

	rows := s.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, Monday, rows[0].Day)
	assert.Equal(t, Thursday, rows[1].Day)
	assert.Equal(t, Sunday, rows[2].Day)
}

func TestWeeklyScheduleJSON(t *testing.T) {
	s := mustParse(t, "Fri,Sat|11:00-0:00")

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"FRIDAY":   {"start": "11:00", "end": "00:00"},
		"SATURDAY": {"start": "11:00", "end": "00:00"}
	}`, string(b))

	var back WeeklySchedule
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}

func TestRestaurantJSON(t *testing.T) {
	r := Restaurant{Name: "Burger Bar", Schedule: mustParse(t, "Mon|11:00-22:00")}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Burger Bar",
		"open_hours": {"MONDAY": {"start": "11:00", "end": "22:00"}}
	}`, string(b))
}
