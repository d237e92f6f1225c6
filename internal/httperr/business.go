package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Booking rejection codes. Kept as package constants so handlers and use
// cases agree on the taxonomy.
const (
	CodeCreatorNotFound     = "creator_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeBookingNotFound     = "booking_not_found"
	CodeTooSoon             = "too_soon"
	CodeOutsideAvailability = "outside_availability"
	CodeTimeConflict        = "time_conflict"
	CodeInvalidState        = "invalid_state"
	CodePaymentInitFailed   = "payment_init_failed"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsExclusionConflict reports whether err is a Postgres unique or
// exclusion constraint violation, which the bookings table raises when
// two inserts race for overlapping intervals.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
