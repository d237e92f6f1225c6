package booking

import (
	"context"
	"testing"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
)

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepo()
	creator, _ := seedCreator(repo)
	b := seedPendingBooking(repo, creator.ID)

	uc := NewCancelBooking(repo, newAudit())

	got, err := uc.Execute(context.Background(), creator.ID, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", got.Status)
	}
	if got.CancelledAt == nil {
		t.Fatal("cancelled_at not set")
	}

	// Already cancelled: rejected as an invalid state.
	_, err = uc.Execute(context.Background(), creator.ID, b.ID)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestCancelBooking_WrongCreator(t *testing.T) {
	repo := newFakeRepo()
	creator, _ := seedCreator(repo)
	b := seedPendingBooking(repo, creator.ID)

	repo.creators = append(repo.creators, repo.creators[0])
	repo.creators[1].ID = repo.id()
	repo.creators[1].Slug = "other"
	other := repo.creators[1].ID

	uc := NewCancelBooking(repo, newAudit())

	_, err := uc.Execute(context.Background(), other, b.ID)
	if !httperr.IsBusiness(err, httperr.CodeBookingNotFound) {
		t.Fatalf("expected booking_not_found across creators, got %v", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	creator, _ := seedCreator(repo)
	b := seedPendingBooking(repo, creator.ID)
	b.Status = string(domain.StatusConfirmed)
	b.PaymentStatus = string(domain.PaymentPaid)

	uc := NewCompleteBooking(repo, newAudit())

	got, err := uc.Execute(context.Background(), creator.ID, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusCompleted) {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}

	// Completed bookings cannot be cancelled afterwards.
	cancelUC := NewCancelBooking(repo, newAudit())
	_, err = cancelUC.Execute(context.Background(), creator.ID, b.ID)
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}
