package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatorID uint    `gorm:"index" json:"creator_id"`
	Creator   Creator `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"creator"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	// Price is snapshotted at creation so later service edits do not
	// retroactively change in-flight bookings.
	PriceAtBooking float64 `json:"price_at_booking"`
	Currency       string  `gorm:"size:3" json:"currency"`

	// PaymentRef is the external reference handed to the payment
	// provider; the webhook resolves bookings by it.
	PaymentRef       string `gorm:"size:36;uniqueIndex" json:"payment_ref"`
	PaymentSessionID string `gorm:"size:100" json:"payment_session_id"`
	CheckoutURL      string `gorm:"size:500" json:"checkout_url"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
