package scheduling

import (
	"testing"
	"time"

	"github.com/vinchivii/book-savvy-studio/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 7, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"touching end-to-start", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching start-to-end", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			if got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	pairs := [][4]time.Time{
		{at(9, 0), at(10, 0), at(9, 30), at(10, 30)},
		{at(9, 0), at(10, 0), at(10, 0), at(11, 0)},
		{at(9, 0), at(12, 0), at(10, 0), at(10, 30)},
	}

	for _, p := range pairs {
		ab := Overlaps(p[0], p[1], p[2], p[3])
		ba := Overlaps(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Fatalf("Overlaps not symmetric for %v", p)
		}
	}
}

func TestOccupiedIntervalsAddBuffer(t *testing.T) {
	bookings := []models.Booking{
		{StartTime: at(9, 45), EndTime: at(10, 15)},
	}

	got := OccupiedIntervals(bookings, 15*time.Minute)
	if len(got) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(got))
	}
	if !got[0].Start.Equal(at(9, 45)) || !got[0].End.Equal(at(10, 30)) {
		t.Fatalf("expected [09:45, 10:30), got [%s, %s)",
			got[0].Start.Format("15:04"), got[0].End.Format("15:04"))
	}

	// A slot ending exactly when the occupied range starts is free.
	if got[0].OverlapsRange(at(9, 15), at(9, 45)) {
		t.Fatal("slot ending at occupied start should not overlap")
	}
	// A slot starting inside the trailing buffer is not.
	if !got[0].OverlapsRange(at(10, 15), at(10, 45)) {
		t.Fatal("slot starting inside the buffer should overlap")
	}
}

func TestTimeOffIntervalsHaveNoBuffer(t *testing.T) {
	periods := []models.TimeOff{
		{StartTime: at(13, 0), EndTime: at(14, 0)},
	}

	got := TimeOffIntervals(periods)
	if len(got) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(got))
	}
	if !got[0].End.Equal(at(14, 0)) {
		t.Fatalf("time off end moved: got %s", got[0].End.Format("15:04"))
	}
}
