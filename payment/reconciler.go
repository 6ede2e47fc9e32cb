package payment

import (
	"context"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// Captured is the only gateway payment status that proves collected funds.
const Captured = "captured"

// Callback carries one inbound gateway payment callback. Signature is empty
// for failed payments, which never produce a valid one.
type Callback struct {
	Pin           string
	OrderID       string
	PaymentID     string
	Signature     string
	OwnerEmail    string
	BookingID     string
	PaymentType   string
	FailureReason string
}

// Result is what the caller gets back after a callback has been reconciled
// onto the booking.
type Result struct {
	Status        string
	Method        string
	FailureReason *string
}

// Reconciler validates gateway callbacks and applies the outcome to the
// ledger. A client-supplied signature alone is never proof of captured
// funds; the gateway's own payment record is re-fetched and only its
// "captured" status marks a booking PAID.
type Reconciler struct {
	gw     gateway.Gateway
	ledger *booking.Ledger
}

func NewReconciler(gw gateway.Gateway, ledger *booking.Ledger) *Reconciler {
	return &Reconciler{gw: gw, ledger: ledger}
}

// Reconcile runs the signature check, the authoritative payment fetch, and
// the atomic status application. Gateway faults here are absorbed into a
// FAILED outcome rather than aborting, because the booking row must still be
// updated to reflect the failure.
func (r *Reconciler) Reconcile(ctx context.Context, cb Callback) (*Result, error) {
	sigOK := false
	var reason *string
	if cb.Signature != "" {
		if r.gw.VerifySignature(cb.OrderID, cb.PaymentID, cb.Signature) {
			sigOK = true
		} else {
			reason = strptr("Invalid signature")
		}
	} else {
		if cb.FailureReason != "" {
			reason = strptr(cb.FailureReason)
		} else {
			reason = strptr("Payment failed (no signature provided)")
		}
	}

	// Fetch the authoritative record regardless of the signature result.
	pay, err := r.gw.FetchPayment(cb.PaymentID)
	if err != nil {
		sigOK = false
		reason = strptr("Failed to fetch payment details")
	}

	captured := pay != nil && pay.Status() == Captured
	status := models.PaymentFailed
	if sigOK && captured {
		status = models.PaymentPaid
	}
	if status == models.PaymentFailed && reason == nil {
		if desc := pay.ErrorDescription(); desc != "" {
			reason = strptr(desc)
		} else {
			reason = strptr("Payment failed")
		}
	}

	method := models.PaymentModeUnknown
	if pay != nil && pay.Method() != "" {
		method = pay.Method()
	}

	outcome := booking.Outcome{
		Pin:           cb.Pin,
		Status:        status,
		TransactionID: cb.PaymentID,
		OrderID:       cb.OrderID,
		Method:        method,
		FailureReason: reason,
	}
	if status == models.PaymentPaid {
		// The fetched amount is authoritative; the provisional amount on the
		// booking is never trusted past this point.
		amount := pay.AmountMinor() / 100
		switch cb.PaymentType {
		case models.PaymentTypeInitial:
			outcome.SetAmount = &amount
		case models.PaymentTypeRemaining:
			outcome.AddAmount = &amount
		}
	}

	if err := r.ledger.ApplyPaymentOutcome(ctx, cb.OwnerEmail, cb.BookingID, outcome); err != nil {
		return nil, err
	}
	return &Result{Status: status, Method: method, FailureReason: reason}, nil
}

func strptr(s string) *string { return &s }
