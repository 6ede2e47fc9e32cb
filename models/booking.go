package models

import "time"

// Payment states a booking can be in. A booking starts PENDING and moves to
// PAID or FAILED once a gateway callback has been reconciled; a remaining
// balance order runs the same transition a second time.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"

	// PaymentModeUnknown is written when the gateway record carries no method.
	PaymentModeUnknown = "UNKNOWN"
)

// Payment types tagged into the gateway order notes so reconciliation knows
// whether the captured amount replaces or increments the booking amount.
const (
	PaymentTypeInitial   = "initial"
	PaymentTypeRemaining = "remaining"
)

type Booking struct {
	BookingID  string `json:"bookingId" gorm:"primaryKey"`
	OwnerEmail string `json:"userEmail" gorm:"index;not null"`

	ParlorEmail      string    `json:"parlorEmail" validate:"required"`
	ParlorName       string    `json:"parlorName" validate:"required"`
	Name             string    `json:"name" validate:"required"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time" validate:"required"`
	Service          string    `json:"service" validate:"required"`
	FavoriteEmployee string    `json:"favoriteEmployee"`
	RelatedServices  []string  `json:"relatedServices" gorm:"serializer:json"`
	Duration         int       `json:"duration"`

	// Amount is what has actually been captured so far; until the first
	// reconciliation it holds the caller's provisional deposit estimate.
	// TotalAmount is the contractual total for the service.
	Amount      float64 `json:"amount"`
	TotalAmount float64 `json:"total_amount"`

	PaymentStatus string  `json:"paymentStatus"`
	PaymentMode   string  `json:"Payment_Mode" gorm:"column:payment_mode"`
	OrderID       string  `json:"orderId" gorm:"index"`
	TransactionID string  `json:"transactionId"`
	FailureReason *string `json:"failureReason"`
	Pin           string  `json:"pin"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
