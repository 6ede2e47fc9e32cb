package payment

import (
	"context"
	"time"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// Verification is the denormalized read-only view of a booking located by
// its gateway order id, combined with the gateway's live currency code.
type Verification struct {
	PaymentStatus    string    `json:"paymentStatus"`
	TransactionID    *string   `json:"transactionId"`
	OrderID          string    `json:"orderId"`
	Amount           float64   `json:"amount"`
	TotalAmount      float64   `json:"total_amount"`
	PaymentMode      string    `json:"Payment_Mode"`
	CreatedAt        time.Time `json:"createdAt"`
	ParlorName       string    `json:"parlorName"`
	Service          string    `json:"service"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Name             string    `json:"name"`
	FavoriteEmployee string    `json:"favoriteEmployee"`
	RelatedServices  []string  `json:"relatedServices"`
	FailureReason    *string   `json:"failureReason"`
	Currency         string    `json:"currency"`
}

// Verifier resolves gateway order ids back to their owning booking.
type Verifier struct {
	gw     gateway.Gateway
	ledger *booking.Ledger
}

func NewVerifier(gw gateway.Gateway, ledger *booking.Ledger) *Verifier {
	return &Verifier{gw: gw, ledger: ledger}
}

// Verify returns the stored booking fields for the order id plus the live
// order currency. The gateway fetches are best effort: failures are
// swallowed and the stored view is returned with the default currency.
func (v *Verifier) Verify(ctx context.Context, orderID string) (*Verification, error) {
	b, err := v.ledger.FindBookingByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	currency := Currency
	if order, err := v.gw.FetchOrder(orderID); err == nil {
		if c := order.Currency(); c != "" {
			currency = c
		}
	}
	if b.TransactionID != "" {
		// Best effort too; the live payment record is not part of the view
		// but fetching it surfaces gateway-side logging for support.
		_, _ = v.gw.FetchPayment(b.TransactionID)
	}

	view := &Verification{
		PaymentStatus:    b.PaymentStatus,
		OrderID:          b.OrderID,
		Amount:           b.Amount,
		TotalAmount:      b.TotalAmount,
		PaymentMode:      b.PaymentMode,
		CreatedAt:        b.CreatedAt,
		ParlorName:       b.ParlorName,
		Service:          b.Service,
		Date:             b.Date,
		Time:             b.Time,
		Name:             b.Name,
		FavoriteEmployee: b.FavoriteEmployee,
		RelatedServices:  b.RelatedServices,
		FailureReason:    b.FailureReason,
		Currency:         currency,
	}
	if view.PaymentMode == "" {
		view.PaymentMode = models.PaymentModeUnknown
	}
	if view.RelatedServices == nil {
		view.RelatedServices = []string{}
	}
	if b.TransactionID != "" {
		view.TransactionID = &b.TransactionID
	}
	return view, nil
}
