package booking

import (
	"context"
	"time"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/dto"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(
	repo domain.Repository,
) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo: repo,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	creatorID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	creator, err := uc.repo.GetCreatorByID(ctx, creatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}

	loc := timezone.Location(creator.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
