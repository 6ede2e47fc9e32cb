package booking

import "errors"

var (
	// ErrValidation covers caller input that fails the contract: missing
	// fields, non-positive amounts, unparseable dates or time slots.
	ErrValidation = errors.New("invalid booking request")

	// ErrInvalidFormat is returned for time strings that are not HH:MM or
	// HH:MM-HH:MM. It is matched by ErrValidation at the HTTP layer.
	ErrInvalidFormat = errors.New("invalid time format")

	ErrSlotUnavailable = errors.New("selected time slot is not available for the required duration")
	ErrOwnerNotFound   = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)
