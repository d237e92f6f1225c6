package booking

import (
	"context"

	"github.com/vinchivii/book-savvy-studio/internal/audit"
	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/models"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

type CompleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	creatorID uint,
	bookingID uint,
) (*models.Booking, error) {

	creator, err := uc.repo.GetCreatorByID(ctx, creatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}

	b, err := uc.repo.GetBookingForCreator(ctx, bookingID, creatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}

	now := timezone.NowIn(creator.Timezone)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CreatorID: creatorID,
		Action:    "booking_completed",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
