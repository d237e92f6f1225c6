package booking

import (
	"context"

	"github.com/vinchivii/book-savvy-studio/internal/audit"
	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/payment"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

// ConfirmPayment applies the outcome of a payment notification to its
// booking. It is the only path that makes a booking confirmed and paid.
type ConfirmPayment struct {
	repo     domain.Repository
	payments payment.Provider
	audit    *audit.Dispatcher
}

func NewConfirmPayment(
	repo domain.Repository,
	payments payment.Provider,
	audit *audit.Dispatcher,
) *ConfirmPayment {
	return &ConfirmPayment{
		repo:     repo,
		payments: payments,
		audit:    audit,
	}
}

// Execute resolves the provider payment, finds the booking by its
// external reference and transitions it. Repeated notifications for the
// same payment are harmless: the transitions are idempotent.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	paymentID string,
) error {

	info, err := uc.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	b, err := uc.repo.GetBookingByPaymentRef(ctx, info.ExternalReference)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	creator, err := uc.repo.GetCreatorByID(ctx, b.CreatorID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}
	now := timezone.NowIn(creator.Timezone)

	var action string
	switch info.Status {
	case payment.StatusApproved:
		domain.ConfirmPayment(b)
		action = "booking_payment_confirmed"
	case payment.StatusRejected, payment.StatusCancelled, payment.StatusExpired:
		domain.FailPayment(b, now)
		action = "booking_payment_failed"
	case payment.StatusRefunded:
		domain.RefundPayment(b, now)
		action = "booking_payment_refunded"
	default:
		// still in progress, nothing to apply
		return nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		CreatorID: b.CreatorID,
		Action:    action,
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return nil
}
