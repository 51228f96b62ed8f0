package dto

import "github.com/BruksfildServices01/restaurant-hours/internal/domain/openhours"

type OpenRestaurantDTO struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name"`
}

type RestaurantDTO struct {
	ID        uint                     `json:"id,omitempty"`
	Name      string                   `json:"name"`
	OpenHours openhours.WeeklySchedule `json:"open_hours"`
}

type DroppedRecordDTO struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

type ImportDTO struct {
	Accepted int                `json:"accepted"`
	Dropped  []DroppedRecordDTO `json:"dropped"`
}

func OpenRestaurants(rs []openhours.Restaurant) []OpenRestaurantDTO {
	out := make([]OpenRestaurantDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, OpenRestaurantDTO{ID: r.ID, Name: r.Name})
	}
	return out
}

func Restaurants(rs []openhours.Restaurant) []RestaurantDTO {
	out := make([]RestaurantDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, RestaurantDTO{ID: r.ID, Name: r.Name, OpenHours: r.Schedule})
	}
	return out
}
