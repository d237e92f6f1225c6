package booking

import (
	"context"
	"time"

	domain "github.com/vinchivii/book-savvy-studio/internal/domain/scheduling"
	"github.com/vinchivii/book-savvy-studio/internal/httperr"
	"github.com/vinchivii/book-savvy-studio/internal/timezone"
)

type GetAvailability struct {
	repo     domain.Repository
	buffer   time.Duration
	leadTime time.Duration

	// Now overrides the clock in tests. Leave nil in production: the
	// current time is taken in the creator's timezone.
	Now func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	buffer time.Duration,
	leadTime time.Duration,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		buffer:   buffer,
		leadTime: leadTime,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	creator, err := uc.repo.GetCreatorByID(ctx, in.CreatorID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeCreatorNotFound)
	}

	svc, err := uc.repo.GetActiveService(ctx, in.CreatorID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	loc := timezone.Location(creator.Timezone)
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	rules, err := uc.repo.ListActiveRules(ctx, creator.ID, int(dayStart.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []domain.TimeSlot{}, nil
	}

	// A booking just before midnight still occupies into this day
	// through its buffer, so the read window is widened by it.
	bookings, err := uc.repo.ListOccupyingBookings(
		ctx,
		creator.ID,
		dayStart.Add(-uc.buffer),
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	timeOff, err := uc.repo.ListTimeOff(ctx, creator.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := domain.OccupiedIntervals(bookings, uc.buffer)
	busy = append(busy, domain.TimeOffIntervals(timeOff)...)

	now := uc.now(creator.Timezone)
	minStart := now.Add(uc.leadTime)

	slots := domain.GenerateSlots(
		dayStart,
		rules,
		busy,
		time.Duration(svc.DurationMin)*time.Minute,
		uc.buffer,
		minStart,
	)

	return slots, nil
}

func (uc *GetAvailability) now(tz string) time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return timezone.NowIn(tz)
}
