package scheduling

import (
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

// AtTime resolves an "HH:MM" time-of-day onto the date of day, in day's
// location. ok is false for malformed values.
func AtTime(day time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), true
}

// WithinRules reports whether some active rule for start's weekday opens
// at or before start and closes after it. Only the start instant is
// checked; the service runs to start+duration regardless of the window
// edge, matching how slots are offered.
func WithinRules(rules []models.AvailabilityRule, start time.Time) bool {
	for _, rule := range rules {
		if !rule.Active {
			continue
		}

		windowStart, okStart := AtTime(start, rule.StartTime)
		windowEnd, okEnd := AtTime(start, rule.EndTime)
		if !okStart || !okEnd {
			continue
		}

		if !start.Before(windowStart) && start.Before(windowEnd) {
			return true
		}
	}
	return false
}
