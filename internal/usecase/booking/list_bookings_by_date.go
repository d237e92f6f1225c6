package booking

import (
	"context"
	"time"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/dto"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	creatorID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	creator, err := uc.repo.GetCreatorByID(ctx, creatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}

	loc := timezone.Location(creator.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		creatorID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:            b.ID,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Status:        b.Status,
			PaymentStatus: b.PaymentStatus,
			ClientName:    b.Client.Name,
			ServiceName:   b.Service.Name,
			Price:         b.PriceAtBooking,
		})
	}

	return out, nil
}
