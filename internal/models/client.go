package models

import "time"

// Client has no login; it is matched by email within a creator.
type Client struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatorID uint `json:"creator_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
