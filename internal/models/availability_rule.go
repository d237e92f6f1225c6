package models

import "time"

// AvailabilityRule is one weekly recurring window (0=Sunday .. 6=Saturday).
// A creator may have several rows for the same weekday (split shifts).
type AvailabilityRule struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatorID uint `gorm:"index" json:"creator_id"`

	Weekday int `json:"weekday"`

	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
