package models

import "time"

// A record dropped while importing the restaurant source.
type ImportLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Source string `gorm:"size:255" json:"source"`
	Line   int    `json:"line"`
	Name   string `gorm:"size:255" json:"name"`
	Reason string `gorm:"type:text;not null" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
