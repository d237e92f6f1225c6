package scheduling

import (
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the single overlap test shared by the slot generator and
// the booking validator. Half-open semantics: an interval ending exactly
// when another starts does NOT overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func (i Interval) OverlapsRange(start, end time.Time) bool {
	return Overlaps(start, end, i.Start, i.End)
}

// OccupiedIntervals maps bookings to their occupied ranges
// [start, end+buffer): the buffer after every booking is blocked so
// consecutive bookings never abut without transition time.
func OccupiedIntervals(bookings []models.Booking, buffer time.Duration) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Interval{
			Start: b.StartTime,
			End:   b.EndTime.Add(buffer),
		})
	}
	return out
}

// TimeOffIntervals maps time-off periods to busy ranges. No buffer is
// added: time off blocks exactly what it says.
func TimeOffIntervals(periods []models.TimeOff) []Interval {
	out := make([]Interval, 0, len(periods))
	for _, p := range periods {
		out = append(out, Interval{Start: p.StartTime, End: p.EndTime})
	}
	return out
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if b.OverlapsRange(start, end) {
			return true
		}
	}
	return false
}
