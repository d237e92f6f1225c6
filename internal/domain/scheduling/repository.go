package scheduling

import (
	"context"
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type Repository interface {
	// -------- Creator --------
	GetCreatorByID(
		ctx context.Context,
		id uint,
	) (*models.Creator, error)

	GetCreatorBySlug(
		ctx context.Context,
		slug string,
	) (*models.Creator, error)

	// -------- Service --------
	GetActiveService(
		ctx context.Context,
		creatorID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------
	ListActiveRules(
		ctx context.Context,
		creatorID uint,
		weekday int,
	) ([]models.AvailabilityRule, error)

	ListTimeOff(
		ctx context.Context,
		creatorID uint,
		start time.Time,
		end time.Time,
	) ([]models.TimeOff, error)

	// ListOccupyingBookings returns bookings whose occupied interval can
	// intersect [start, end): status pending or confirmed, payment not
	// refunded. Callers widen the range by the buffer themselves.
	ListOccupyingBookings(
		ctx context.Context,
		creatorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		creatorID uint,
		name string,
		email string,
		phone string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingGuarded re-checks for conflicting occupying bookings
	// and inserts atomically, serialized per creator+start minute.
	CreateBookingGuarded(
		ctx context.Context,
		b *models.Booking,
		buffer time.Duration,
	) error

	// -------- Booking (state change) --------
	GetBookingForCreator(
		ctx context.Context,
		bookingID uint,
		creatorID uint,
	) (*models.Booking, error)

	GetBookingByPaymentRef(
		ctx context.Context,
		ref string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		creatorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
