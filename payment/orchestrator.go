package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// Currency is fixed; multi-currency is out of scope.
const Currency = "INR"

// Orchestrator creates gateway orders for the two payment phases and binds
// the returned order id onto the booking. The gateway is injected once at
// process start.
type Orchestrator struct {
	gw     gateway.Gateway
	ledger *booking.Ledger
}

func NewOrchestrator(gw gateway.Gateway, ledger *booking.Ledger) *Orchestrator {
	return &Orchestrator{gw: gw, ledger: ledger}
}

// CreateInitialOrder opens a deposit order for the booking's provisional
// amount. The paymentType tag in the order notes is what reconciliation
// later uses to decide how the captured amount applies.
func (o *Orchestrator) CreateInitialOrder(ctx context.Context, b *models.Booking) (gateway.Order, error) {
	return o.createOrder(ctx, b, b.Amount, "booking_"+b.BookingID, models.PaymentTypeInitial)
}

// CreateRemainingOrder opens an order for the outstanding balance. The
// requested amount must equal the remaining amount exactly; no rounding
// tolerance is applied.
func (o *Orchestrator) CreateRemainingOrder(ctx context.Context, email, bookingID string, requested float64) (gateway.Order, *models.Booking, error) {
	b, err := o.ledger.FindBooking(ctx, email, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if requested != booking.RemainingAmount(b) {
		return nil, nil, ErrAmountMismatch
	}
	order, err := o.createOrder(ctx, b, requested, "remaining_"+b.BookingID, models.PaymentTypeRemaining)
	if err != nil {
		return nil, nil, err
	}
	return order, b, nil
}

func (o *Orchestrator) createOrder(ctx context.Context, b *models.Booking, amount float64, receipt, paymentType string) (gateway.Order, error) {
	notes := map[string]interface{}{
		"bookingId":   b.BookingID,
		"userEmail":   b.OwnerEmail,
		"paymentType": paymentType,
	}
	order, err := o.gw.CreateOrder(MinorUnits(amount), Currency, receipt, notes)
	if err != nil {
		return nil, err
	}
	if order.ID() == "" {
		return nil, fmt.Errorf("%w: order response has no id", gateway.ErrGateway)
	}
	// Overwrites any previously bound order, so the booking always points at
	// its latest outstanding order.
	if err := o.ledger.BindOrder(ctx, b.OwnerEmail, b.BookingID, order.ID()); err != nil {
		return nil, err
	}
	b.OrderID = order.ID()
	return order, nil
}

// MinorUnits converts a rupee amount into paise for the gateway API.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
