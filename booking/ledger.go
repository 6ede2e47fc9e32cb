package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

var validate = validator.New()

// OwnerStore is the collaborator that persists owners and their bookings.
// Implementations must make UpdateBookingFields a single atomic write keyed
// by (owner email, booking id).
type OwnerStore interface {
	FindOwner(ctx context.Context, email string) (*models.Owner, error)
	AppendBooking(ctx context.Context, b *models.Booking) error
	FindBooking(ctx context.Context, email, bookingID string) (*models.Booking, error)
	FindBookingByOrderID(ctx context.Context, orderID string) (*models.Booking, error)
	BindOrder(ctx context.Context, email, bookingID, orderID string) error
	UpdateBookingFields(ctx context.Context, email, bookingID string, fields map[string]interface{}) error
}

// Ledger owns booking lifecycle state and the monetary fields on it. All
// mutations go through the OwnerStore so each one is a single write.
type Ledger struct {
	store OwnerStore
}

func NewLedger(store OwnerStore) *Ledger {
	return &Ledger{store: store}
}

// CreateRequest carries the fields of an initial booking request.
type CreateRequest struct {
	OwnerEmail       string   `json:"userEmail" validate:"required,email"`
	ParlorEmail      string   `json:"parlorEmail" validate:"required"`
	ParlorName       string   `json:"parlorName" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Date             string   `json:"date" validate:"required"`
	Time             string   `json:"time" validate:"required"`
	Service          string   `json:"service" validate:"required"`
	Amount           float64  `json:"amount"`
	TotalAmount      float64  `json:"total_amount"`
	FavoriteEmployee string   `json:"favoriteEmployee"`
	RelatedServices  []string `json:"relatedServices"`
}

// CreateBooking validates the request, checks the requested slot against the
// owner's existing bookings for the same employee and day, and persists a new
// PENDING booking. The overlap check is read-then-write without a lock; two
// near-simultaneous requests for the same slot can both pass it.
func (l *Ledger) CreateBooking(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: missing required fields: %v", ErrValidation, err)
	}
	if !validAmount(req.Amount) || !validAmount(req.TotalAmount) {
		return nil, fmt.Errorf("%w: invalid amount or total_amount", ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format", ErrValidation)
	}

	start, err := ToMinutes(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	duration := ComputeDuration(BaseDuration, len(req.RelatedServices))

	owner, err := l.store.FindOwner(ctx, req.OwnerEmail)
	if err != nil {
		return nil, err
	}

	existing := make([]models.Booking, 0)
	for _, b := range owner.Bookings {
		if b.Date.IsZero() {
			continue
		}
		if b.FavoriteEmployee == req.FavoriteEmployee && SameCalendarDay(b.Date, date) {
			existing = append(existing, b)
		}
	}
	if err := SlotFree(Interval{Start: start, End: start + duration}, existing); err != nil {
		return nil, err
	}

	b := &models.Booking{
		BookingID:        uuid.NewString(),
		OwnerEmail:       req.OwnerEmail,
		ParlorEmail:      req.ParlorEmail,
		ParlorName:       req.ParlorName,
		Name:             req.Name,
		Date:             date,
		Time:             req.Time,
		Service:          req.Service,
		FavoriteEmployee: req.FavoriteEmployee,
		RelatedServices:  req.RelatedServices,
		Duration:         duration,
		Amount:           req.Amount,
		TotalAmount:      req.TotalAmount,
		PaymentStatus:    models.PaymentPending,
		PaymentMode:      models.PaymentPending,
	}
	if err := l.store.AppendBooking(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// BindOrder records the current gateway order id on a booking. Rebinding
// overwrites, so the booking always points at its latest outstanding order.
func (l *Ledger) BindOrder(ctx context.Context, email, bookingID, orderID string) error {
	return l.store.BindOrder(ctx, email, bookingID, orderID)
}

// Outcome is the result of reconciling one gateway callback. Exactly one of
// SetAmount / AddAmount may be set: SetAmount replaces the provisional amount
// (initial payment), AddAmount increments it (remaining payment).
type Outcome struct {
	Pin           string
	Status        string
	TransactionID string
	OrderID       string
	Method        string
	FailureReason *string
	SetAmount     *float64
	AddAmount     *float64
}

// ApplyPaymentOutcome writes every field of the outcome as one atomic update
// against the (owner email, booking id) pair.
func (l *Ledger) ApplyPaymentOutcome(ctx context.Context, email, bookingID string, o Outcome) error {
	fields := map[string]interface{}{
		"pin":            o.Pin,
		"payment_status": o.Status,
		"transaction_id": o.TransactionID,
		"order_id":       o.OrderID,
		"payment_mode":   o.Method,
		"failure_reason": o.FailureReason,
	}
	if o.SetAmount != nil {
		fields["amount"] = *o.SetAmount
	} else if o.AddAmount != nil {
		b, err := l.store.FindBooking(ctx, email, bookingID)
		if err != nil {
			return err
		}
		fields["amount"] = b.Amount + *o.AddAmount
	}
	return l.store.UpdateBookingFields(ctx, email, bookingID, fields)
}

// RemainingAmount is what is still owed on a booking. Remaining-balance
// orders must request exactly this value.
func RemainingAmount(b *models.Booking) float64 {
	return b.TotalAmount - b.Amount
}

func (l *Ledger) FindBooking(ctx context.Context, email, bookingID string) (*models.Booking, error) {
	return l.store.FindBooking(ctx, email, bookingID)
}

func (l *Ledger) FindBookingByOrderID(ctx context.Context, orderID string) (*models.Booking, error) {
	return l.store.FindBookingByOrderID(ctx, orderID)
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
