package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
)

func newCreateUC(repo *fakeRepo, provider *fakeProvider, now time.Time) *CreateBooking {
	uc := NewCreateBooking(repo, provider, newAudit(), fixtureBuffer, fixtureLeadTime)
	uc.Now = fixedClock(now)
	return uc
}

func validInput(creator *models.Creator, svc *models.Service, start time.Time) CreateBookingInput {
	return CreateBookingInput{
		CreatorID:   creator.ID,
		ServiceID:   svc.ID,
		Start:       start,
		ClientName:  "Paulo Lima",
		ClientEmail: "paulo@example.com",
		ClientPhone: "+55 11 99999-0000",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	b, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if b.PaymentStatus != string(domain.PaymentPending) {
		t.Fatalf("payment status = %q, want pending", b.PaymentStatus)
	}
	if b.PriceAtBooking != svc.Price {
		t.Fatalf("price snapshot = %v, want %v", b.PriceAtBooking, svc.Price)
	}
	if b.Currency != creator.Currency {
		t.Fatalf("currency = %q, want %q", b.Currency, creator.Currency)
	}
	if !b.EndTime.Equal(day.Add(10*time.Hour + 30*time.Minute)) {
		t.Fatalf("end = %s, want 10:30", b.EndTime.Format("15:04"))
	}
	if b.PaymentRef == "" {
		t.Fatal("payment ref not assigned")
	}
	if b.CheckoutURL == "" || b.PaymentSessionID == "" {
		t.Fatal("checkout session not attached")
	}
	if provider.initCalls != 1 {
		t.Fatalf("provider called %d times, want 1", provider.initCalls)
	}
	if len(repo.clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(repo.clients))
	}
}

func TestCreateBooking_ReusesClientByEmail(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	first, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(9*time.Hour)))
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(11*time.Hour)))
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	if first.ClientID != second.ClientID {
		t.Fatal("same email should map to the same client")
	}
	if len(repo.clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(repo.clients))
	}
}

func TestCreateBooking_UnknownCreatorAndService(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	in := validInput(creator, svc, day.Add(10*time.Hour))
	in.CreatorID = 999
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeCreatorNotFound) {
		t.Fatalf("expected creator_not_found, got %v", err)
	}

	in = validInput(creator, svc, day.Add(10*time.Hour))
	in.ServiceID = 999
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found, got %v", err)
	}

	// Inactive services are treated as missing.
	repo.services[0].Active = false
	in = validInput(creator, svc, day.Add(10*time.Hour))
	if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("expected service_not_found for inactive service, got %v", err)
	}

	if provider.initCalls != 0 {
		t.Fatal("provider should not be called on validation failure")
	}
}

func TestCreateBooking_LeadTimeViolation(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(9*time.Hour))

	// 10:00 start with now=09:00 and a 2h lead time is too soon.
	_, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour)))
	if !httperr.IsBusiness(err, httperr.CodeTooSoon) {
		t.Fatalf("expected too_soon, got %v", err)
	}

	// Exactly now+leadTime is still rejected.
	_, err = uc.Execute(context.Background(), validInput(creator, svc, day.Add(11*time.Hour)))
	if !httperr.IsBusiness(err, httperr.CodeTooSoon) {
		t.Fatalf("expected too_soon at the boundary, got %v", err)
	}
}

func TestCreateBooking_OutsideAvailability(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	// 14:00 is past the 09:00-12:00 window.
	_, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(14*time.Hour)))
	if !httperr.IsBusiness(err, httperr.CodeOutsideAvailability) {
		t.Fatalf("expected outside_availability, got %v", err)
	}

	// Tuesday has no rules at all.
	_, err = uc.Execute(context.Background(), validInput(creator, svc, day.Add(24*time.Hour+10*time.Hour)))
	if !httperr.IsBusiness(err, httperr.CodeOutsideAvailability) {
		t.Fatalf("expected outside_availability on a closed day, got %v", err)
	}
}

func TestCreateBooking_ConflictWithExisting(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	repo.bookings = append(repo.bookings, models.Booking{
		ID:            repo.id(),
		CreatorID:     creator.ID,
		ServiceID:     svc.ID,
		StartTime:     day.Add(10 * time.Hour),
		EndTime:       day.Add(10*time.Hour + 30*time.Minute),
		Status:        string(domain.StatusConfirmed),
		PaymentStatus: string(domain.PaymentPaid),
	})

	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	// Direct overlap.
	_, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour+15*time.Minute)))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict, got %v", err)
	}

	// Start inside the trailing buffer [10:30, 10:45).
	_, err = uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour+30*time.Minute)))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict inside the buffer, got %v", err)
	}

	// 10:45 clears the buffer.
	if _, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour+45*time.Minute))); err != nil {
		t.Fatalf("expected success after the buffer, got %v", err)
	}
}

func TestCreateBooking_CancelledBookingReleasesSlot(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	repo.bookings = append(repo.bookings, models.Booking{
		ID:            repo.id(),
		CreatorID:     creator.ID,
		StartTime:     day.Add(10 * time.Hour),
		EndTime:       day.Add(10*time.Hour + 30*time.Minute),
		Status:        string(domain.StatusCancelled),
		PaymentStatus: string(domain.PaymentUnpaid),
	})

	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	if _, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour))); err != nil {
		t.Fatalf("cancelled booking should not block: %v", err)
	}
}

func TestCreateBooking_TimeOffBlocks(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	repo.timeOff = append(repo.timeOff, models.TimeOff{
		ID:        repo.id(),
		CreatorID: creator.ID,
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
	})

	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	_, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour+15*time.Minute)))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict during time off, got %v", err)
	}
}

func TestCreateBooking_SequentialDoubleBooking(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	if _, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour))); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Second request for the identical start loses.
	in := validInput(creator, svc, day.Add(10*time.Hour))
	in.ClientEmail = "rival@example.com"
	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict on double booking, got %v", err)
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
}

func TestCreateBooking_PaymentInitFailureLeavesPendingRow(t *testing.T) {
	repo := newFakeRepo()
	creator, svc := seedCreator(repo)
	provider := &fakeProvider{failInit: true}

	day := fixtureDate()
	uc := newCreateUC(repo, provider, day.Add(6*time.Hour))

	b, err := uc.Execute(context.Background(), validInput(creator, svc, day.Add(10*time.Hour)))
	if !httperr.IsBusiness(err, httperr.CodePaymentInitFailed) {
		t.Fatalf("expected payment_init_failed, got %v", err)
	}
	if b == nil {
		t.Fatal("booking should be returned alongside the error")
	}

	// The row stays pending/pending with no session attached so a
	// reconciliation sweep can reclaim it later.
	stored, getErr := repo.GetBookingForCreator(context.Background(), b.ID, creator.ID)
	if getErr != nil {
		t.Fatalf("booking row missing: %v", getErr)
	}
	if stored.Status != string(domain.StatusPending) || stored.PaymentStatus != string(domain.PaymentPending) {
		t.Fatalf("stored state = %s/%s, want pending/pending", stored.Status, stored.PaymentStatus)
	}
	if stored.PaymentSessionID != "" || stored.CheckoutURL != "" {
		t.Fatal("failed init must not attach a session")
	}
}
