package booking

import (
	"fmt"
	"strings"
	"time"
)

// BaseDuration is the length of a primary service in minutes. Each related
// service adds AddonDuration on top.
const (
	BaseDuration  = 60
	AddonDuration = 30
)

// ToMinutes converts the start of a slot string ("HH:MM" or "HH:MM-HH:MM")
// into minutes since midnight.
func ToMinutes(slot string) (int, error) {
	start := strings.TrimSpace(strings.Split(slot, "-")[0])
	t, err := time.Parse("15:04", start)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, slot)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ComputeDuration returns the total service duration for a booking with the
// given number of related services.
func ComputeDuration(baseMinutes, addonCount int) int {
	return baseMinutes + AddonDuration*addonCount
}
