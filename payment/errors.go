package payment

import "errors"

// ErrAmountMismatch is returned when a remaining-balance order requests
// anything other than exactly the outstanding balance.
var ErrAmountMismatch = errors.New("amount does not match remaining amount")
