package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vinchivii/book-savvy-studio/internal/audit"
	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/payment"
)

// ======================================================
// IN-MEMORY REPOSITORY
// ======================================================

type fakeRepo struct {
	creators []models.Creator
	services []models.Service
	rules    []models.AvailabilityRule
	timeOff  []models.TimeOff
	bookings []models.Booking
	clients  []models.Client

	nextID uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) id() uint {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakeRepo) GetCreatorByID(_ context.Context, id uint) (*models.Creator, error) {
	for i := range r.creators {
		if r.creators[i].ID == id {
			return &r.creators[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetCreatorBySlug(_ context.Context, slug string) (*models.Creator, error) {
	for i := range r.creators {
		if r.creators[i].Slug == slug {
			return &r.creators[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetActiveService(_ context.Context, creatorID, serviceID uint) (*models.Service, error) {
	for i := range r.services {
		s := &r.services[i]
		if s.ID == serviceID && s.CreatorID == creatorID && s.Active {
			return s, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) ListActiveRules(_ context.Context, creatorID uint, weekday int) ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, rule := range r.rules {
		if rule.CreatorID == creatorID && rule.Weekday == weekday && rule.Active {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTimeOff(_ context.Context, creatorID uint, start, end time.Time) ([]models.TimeOff, error) {
	var out []models.TimeOff
	for _, p := range r.timeOff {
		if p.CreatorID == creatorID && domain.Overlaps(p.StartTime, p.EndTime, start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOccupyingBookings(_ context.Context, creatorID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CreatorID != creatorID {
			continue
		}
		if !domain.IsOccupying(domain.Status(b.Status), domain.PaymentStatus(b.PaymentStatus)) {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetOrCreateClient(_ context.Context, creatorID uint, name, email, phone string) (*models.Client, error) {
	for i := range r.clients {
		c := &r.clients[i]
		if c.CreatorID == creatorID && c.Email == email {
			return c, nil
		}
	}
	r.clients = append(r.clients, models.Client{
		ID:        r.id(),
		CreatorID: creatorID,
		Name:      name,
		Email:     email,
		Phone:     phone,
	})
	return &r.clients[len(r.clients)-1], nil
}

func (r *fakeRepo) CreateBookingGuarded(_ context.Context, b *models.Booking, buffer time.Duration) error {
	for _, other := range r.bookings {
		if other.CreatorID != b.CreatorID {
			continue
		}
		if !domain.IsOccupying(domain.Status(other.Status), domain.PaymentStatus(other.PaymentStatus)) {
			continue
		}
		if domain.Overlaps(b.StartTime, b.EndTime, other.StartTime, other.EndTime.Add(buffer)) {
			// Same shape the real repository surfaces when the insert
			// loses the race.
			return &pgconn.PgError{Code: "23P01"}
		}
	}
	b.ID = r.id()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBookingForCreator(_ context.Context, bookingID, creatorID uint) (*models.Booking, error) {
	for i := range r.bookings {
		b := &r.bookings[i]
		if b.ID == bookingID && b.CreatorID == creatorID {
			return b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetBookingByPaymentRef(_ context.Context, ref string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].PaymentRef == ref {
			return &r.bookings[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, creatorID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CreatorID == creatorID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

// ======================================================
// FAKE PAYMENT PROVIDER
// ======================================================

type fakeProvider struct {
	failInit  bool
	initCalls int

	// payments maps provider payment IDs to resolved info.
	payments map[string]payment.Info
}

var _ payment.Provider = (*fakeProvider)(nil)

func (p *fakeProvider) InitCheckout(_ context.Context, b *models.Booking, _ *models.Service) (*payment.Checkout, error) {
	p.initCalls++
	if p.failInit {
		return nil, errors.New("provider unavailable")
	}
	return &payment.Checkout{
		SessionID: "sess-" + b.PaymentRef,
		URL:       "https://pay.example/" + b.PaymentRef,
	}, nil
}

func (p *fakeProvider) GetPayment(_ context.Context, paymentID string) (*payment.Info, error) {
	info, ok := p.payments[paymentID]
	if !ok {
		return nil, errors.New("payment not found")
	}
	return &info, nil
}

// ======================================================
// FIXTURES
// ======================================================

const (
	fixtureBuffer   = 15 * time.Minute
	fixtureLeadTime = 2 * time.Hour
)

// 2026-09-07 is a Monday.
func fixtureDate() time.Time {
	return time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
}

func seedCreator(r *fakeRepo) (*models.Creator, *models.Service) {
	r.creators = append(r.creators, models.Creator{
		ID:       r.id(),
		Name:     "Marina Duarte",
		Slug:     "marina",
		Timezone: "UTC",
		Currency: "BRL",
	})
	creator := &r.creators[len(r.creators)-1]

	r.services = append(r.services, models.Service{
		ID:          r.id(),
		CreatorID:   creator.ID,
		Name:        "Mentoring session",
		DurationMin: 30,
		Price:       120,
		Active:      true,
	})
	svc := &r.services[len(r.services)-1]

	r.rules = append(r.rules, models.AvailabilityRule{
		ID:        r.id(),
		CreatorID: creator.ID,
		Weekday:   1,
		StartTime: "09:00",
		EndTime:   "12:00",
		Active:    true,
	})

	return creator, svc
}

func newAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
