package models

import "time"

// TimeOff is a hard exclusion with absolute bounds. It overrides any
// AvailabilityRule that would otherwise open the window.
type TimeOff struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatorID uint `gorm:"index" json:"creator_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
