package models

import "time"

type Restaurant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`

	OpenHours []OpenHours `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"open_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string { return "restaurants" }
