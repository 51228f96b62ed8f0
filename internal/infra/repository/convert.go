package repository

import (
	"fmt"

	"github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"
	"github.com/BruksfildServices01/restaurant-hours/internal/models"
)

func toModel(r openhours.Restaurant) models.Restaurant {
	rows := r.Schedule.Rows()
	m := models.Restaurant{
		ID:        r.ID,
		Name:      r.Name,
		OpenHours: make([]models.OpenHours, 0, len(rows)),
	}
	for _, row := range rows {
		m.OpenHours = append(m.OpenHours, models.OpenHours{
			RestaurantID:         r.ID,
			DayOfWeek:            row.Day.String(),
			StartTimeMinuteOfDay: int(row.Interval.Start),
			EndTimeMinuteOfDay:   int(row.Interval.End),
		})
	}
	return m
}

func toDomain(m models.Restaurant) (openhours.Restaurant, error) {
	hours := make(map[openhours.Day]openhours.Interval, len(m.OpenHours))
	for _, oh := range m.OpenHours {
		d, ok := openhours.ParseDay(oh.DayOfWeek)
		if !ok {
			return openhours.Restaurant{}, fmt.Errorf("restaurant %d: unknown day_of_week %q", m.ID, oh.DayOfWeek)
		}
		hours[d] = openhours.Interval{
			Start: openhours.Clock(oh.StartTimeMinuteOfDay),
			End:   openhours.Clock(oh.EndTimeMinuteOfDay),
		}
	}
	return openhours.Restaurant{
		ID:       m.ID,
		Name:     m.Name,
		Schedule: openhours.NewWeeklySchedule(hours),
	}, nil
}
