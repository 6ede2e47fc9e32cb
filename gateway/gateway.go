package gateway

import "errors"

// ErrGateway marks any failure of the external payment provider: transport
// errors, error responses, or responses missing the fields we need.
var ErrGateway = errors.New("payment gateway error")

// Order is the provider's representation of a created or fetched order,
// decoded loosely the way the provider SDK returns it.
type Order map[string]interface{}

// Payment is the provider's authoritative record of a payment attempt.
type Payment map[string]interface{}

// Gateway is the payment provider capability injected into the order
// orchestrator and payment reconciler. It is constructed once at process
// start and safe for concurrent use.
type Gateway interface {
	// CreateOrder opens an order for amount in minor units (paise).
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (Order, error)
	FetchOrder(orderID string) (Order, error)
	FetchPayment(paymentID string) (Payment, error)
	// VerifySignature checks the provider HMAC over "orderID|paymentID".
	VerifySignature(orderID, paymentID, signature string) bool
}

// ID extracts the order id, or "" when the provider returned none.
func (o Order) ID() string {
	id, _ := o["id"].(string)
	return id
}

// Currency reports the order currency code, or "" when absent.
func (o Order) Currency() string {
	c, _ := o["currency"].(string)
	return c
}

// Status reports the provider payment status; "captured" means funds were
// actually collected.
func (p Payment) Status() string {
	s, _ := p["status"].(string)
	return s
}

// AmountMinor is the captured amount in minor units. Provider JSON decodes
// numbers as float64.
func (p Payment) AmountMinor() float64 {
	switch v := p["amount"].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// Method reports the payment instrument, or "" when absent.
func (p Payment) Method() string {
	m, _ := p["method"].(string)
	return m
}

// ErrorDescription reports the provider's failure diagnostic, or "".
func (p Payment) ErrorDescription() string {
	d, _ := p["error_description"].(string)
	return d
}
