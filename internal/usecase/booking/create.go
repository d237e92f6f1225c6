package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vinchivii/book-savvy-studio/internal/audit"
	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/payment"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CreatorID uint
	ServiceID uint

	Start time.Time

	ClientName  string
	ClientEmail string
	ClientPhone string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking is the authoritative gate. Generated slots are only a
// hint to the caller; everything is re-derived from current data here,
// nothing is trusted from the client.
type CreateBooking struct {
	repo     domain.Repository
	payments payment.Provider
	audit    *audit.Dispatcher
	buffer   time.Duration
	leadTime time.Duration

	// Now overrides the clock in tests.
	Now func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	payments payment.Provider,
	audit *audit.Dispatcher,
	buffer time.Duration,
	leadTime time.Duration,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		payments: payments,
		audit:    audit,
		buffer:   buffer,
		leadTime: leadTime,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-validates the proposed start against current data, reserves
// the slot, and hands the booking to payment initiation. When payment
// initiation fails after the row was written, the booking is returned
// together with a payment_init_failed error: it stays pending/pending
// with no checkout session so a reconciliation sweep can reclaim it.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Creator + service
	// --------------------------------------------------
	creator, err := uc.repo.GetCreatorByID(ctx, in.CreatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}

	svc, err := uc.repo.GetActiveService(ctx, in.CreatorID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	start := in.Start.In(timezone.Location(creator.Timezone))

	// --------------------------------------------------
	// Minimum lead time
	// --------------------------------------------------
	now := uc.now(creator.Timezone)
	minStart := now.Add(uc.leadTime)
	if !start.After(minStart) {
		return nil, httperr.ErrBusiness(httperr.CodeTooSoon)
	}

	// --------------------------------------------------
	// Weekly availability
	// --------------------------------------------------
	rules, err := uc.repo.ListActiveRules(ctx, creator.ID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if !domain.WithinRules(rules, start) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideAvailability)
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Conflicts: occupying bookings + time off
	// --------------------------------------------------
	bookings, err := uc.repo.ListOccupyingBookings(
		ctx,
		creator.ID,
		start.Add(-uc.buffer),
		end,
	)
	if err != nil {
		return nil, err
	}
	for _, busy := range domain.OccupiedIntervals(bookings, uc.buffer) {
		if busy.OverlapsRange(start, end) {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}

	timeOff, err := uc.repo.ListTimeOff(ctx, creator.ID, start, end)
	if err != nil {
		return nil, err
	}
	for _, busy := range domain.TimeOffIntervals(timeOff) {
		if busy.OverlapsRange(start, end) {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}

	// --------------------------------------------------
	// Client (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		creator.ID,
		in.ClientName,
		in.ClientEmail,
		in.ClientPhone,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Guarded insert (re-check + create, serialized)
	// --------------------------------------------------
	b := &models.Booking{
		CreatorID:      creator.ID,
		ServiceID:      svc.ID,
		ClientID:       client.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		PaymentStatus:  string(domain.InitialPaymentStatus()),
		PriceAtBooking: svc.Price,
		Currency:       creator.Currency,
		PaymentRef:     uuid.NewString(),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateBookingGuarded(ctx, b, uc.buffer); err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CreatorID: creator.ID,
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	// --------------------------------------------------
	// Payment initiation
	// --------------------------------------------------
	checkout, err := uc.payments.InitCheckout(ctx, b, svc)
	if err != nil {
		uc.audit.Dispatch(audit.Event{
			CreatorID: creator.ID,
			Action:    "payment_init_failed",
			Entity:    "booking",
			EntityID:  &b.ID,
		})
		return b, httperr.ErrBusiness(httperr.CodePaymentInitFailed)
	}

	b.PaymentSessionID = checkout.SessionID
	b.CheckoutURL = checkout.URL
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (uc *CreateBooking) now(tz string) time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return timezone.NowIn(tz)
}
