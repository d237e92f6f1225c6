package scheduling

import (
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// ConfirmPayment is the only path that makes a booking confirmed+paid.
// It is driven by the payment webhook and is idempotent.
func ConfirmPayment(b *models.Booking) {
	if Status(b.Status) == StatusCancelled || Status(b.Status) == StatusCompleted {
		return
	}
	b.Status = string(StatusConfirmed)
	b.PaymentStatus = string(PaymentPaid)
}

// FailPayment releases the slot after a rejected or expired checkout.
func FailPayment(b *models.Booking, now time.Time) {
	if Status(b.Status) != StatusPending {
		return
	}
	b.Status = string(StatusCancelled)
	b.PaymentStatus = string(PaymentUnpaid)
	b.CancelledAt = &now
}

// RefundPayment marks the payment refunded, which drops the booking out
// of the occupying set.
func RefundPayment(b *models.Booking, now time.Time) {
	b.PaymentStatus = string(PaymentRefunded)
	if Status(b.Status) == StatusPending || Status(b.Status) == StatusConfirmed {
		b.Status = string(StatusCancelled)
		b.CancelledAt = &now
	}
}
