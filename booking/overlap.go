package booking

import (
	"time"

	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// Interval is a half-open [Start, End) span in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect. Boundaries are
// exclusive on both ends, so a booking ending at 11:00 does not conflict with
// one starting at 11:00.
func Overlaps(a, b Interval) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// SlotFree checks a candidate interval against existing bookings that were
// already filtered to the same employee and calendar day. Bookings whose time
// string cannot be parsed are skipped rather than treated as conflicts; a
// booking without a recorded duration counts as BaseDuration minutes.
func SlotFree(candidate Interval, existing []models.Booking) error {
	for _, b := range existing {
		start, err := ToMinutes(b.Time)
		if err != nil {
			continue
		}
		duration := b.Duration
		if duration <= 0 {
			duration = BaseDuration
		}
		if Overlaps(candidate, Interval{Start: start, End: start + duration}) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

// SameCalendarDay compares two timestamps on calendar date only, normalized
// to UTC so stored and candidate dates line up regardless of how they were
// supplied.
func SameCalendarDay(a, b time.Time) bool {
	return a.UTC().Format("2006-01-02") == b.UTC().Format("2006-01-02")
}
