package models

// One interval per (restaurant, day). Start after end means it crosses midnight.
type OpenHours struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	RestaurantID uint `gorm:"not null;index:idx_open_hours_restaurant_day,unique" json:"restaurant_id"`

	DayOfWeek            string `gorm:"size:9;not null;index:idx_open_hours_restaurant_day,unique;index:idx_open_hours_day" json:"day_of_week"`
	StartTimeMinuteOfDay int    `gorm:"not null" json:"start_time_minute_of_day"`
	EndTimeMinuteOfDay   int    `gorm:"not null" json:"end_time_minute_of_day"`
}

func (OpenHours) TableName() string { return "open_hours" }
