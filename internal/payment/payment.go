package payment

import (
	"context"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

// Checkout is what the client needs to finish paying for a booking.
type Checkout struct {
	SessionID string
	URL       string
}

// Info is the provider's view of a payment, resolved from a webhook
// notification.
type Info struct {
	ExternalReference string
	Status            string
}

// Payment outcome statuses as normalized by the provider adapter.
const (
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
	StatusRefunded  = "refunded"
	StatusPending   = "pending"
)

// Provider initiates checkouts and resolves webhook notifications. The
// booking flow only ever talks to this interface; everything else about
// the payment processor is external.
type Provider interface {
	InitCheckout(
		ctx context.Context,
		b *models.Booking,
		svc *models.Service,
	) (*Checkout, error)

	GetPayment(
		ctx context.Context,
		paymentID string,
	) (*Info, error)
}
