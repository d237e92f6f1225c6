package scheduling

import "github.com/vinchivii/book-savvy-studio/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// IsOccupying reports whether a booking in the given state blocks a time
// slot. Pending bookings count so a slot mid-checkout is not offered
// twice; refunded bookings release their slot.
func IsOccupying(status Status, payment PaymentStatus) bool {
	if payment == PaymentRefunded {
		return false
	}
	return status == StatusPending || status == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel defines which states a booking can be cancelled from
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete defines which states a booking can be completed from
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentPending
}
