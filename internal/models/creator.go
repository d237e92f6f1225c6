package models

import "time"

type Creator struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Bio      string `gorm:"size:500" json:"bio"`
	Phone    string `gorm:"size:20" json:"phone"`
	Timezone string `gorm:"size:50" json:"timezone"`
	Currency string `gorm:"size:3;default:'BRL'" json:"currency"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
