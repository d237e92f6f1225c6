package scheduling

import (
	"sort"
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

type AvailabilityInput struct {
	CreatorID uint
	ServiceID uint
	Date      time.Time
}

// TimeSlot is one bookable offer. It has no identity beyond its start
// time and is recomputed on every request.
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GenerateSlots walks every active weekly rule for the requested day in
// strides of duration+buffer and emits the starts whose duration-only
// window survives the lead-time cut and every busy interval.
//
// date must be midnight in the creator's location; minStart is now plus
// the minimum lead time. The result is sorted by start time and
// deduplicated where split-shift rules overlap.
func GenerateSlots(
	date time.Time,
	rules []models.AvailabilityRule,
	busy []Interval,
	duration time.Duration,
	buffer time.Duration,
	minStart time.Time,
) []TimeSlot {

	if duration <= 0 {
		return []TimeSlot{}
	}

	step := duration + buffer
	slots := []TimeSlot{}

	for _, rule := range rules {
		if !rule.Active {
			continue
		}

		windowStart, okStart := AtTime(date, rule.StartTime)
		windowEnd, okEnd := AtTime(date, rule.EndTime)
		if !okStart || !okEnd || !windowEnd.After(windowStart) {
			continue
		}

		for cur := windowStart; !cur.Add(duration).After(windowEnd); cur = cur.Add(step) {
			slotStart := cur
			slotEnd := cur.Add(duration)

			// too soon or already past
			if !slotEnd.After(minStart) {
				continue
			}

			if overlapsAny(slotStart, slotEnd, busy) {
				continue
			}

			slots = append(slots, TimeSlot{Start: slotStart, End: slotEnd})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return dedupeByStart(slots)
}

func dedupeByStart(slots []TimeSlot) []TimeSlot {
	out := slots[:0]
	for _, s := range slots {
		if len(out) > 0 && out[len(out)-1].Start.Equal(s.Start) {
			continue
		}
		out = append(out, s)
	}
	return out
}
