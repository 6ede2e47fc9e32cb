package gateway

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayGateway adapts the Razorpay SDK to the Gateway capability. The key
// secret is kept for signature verification.
type RazorpayGateway struct {
	client *razorpay.Client
	secret string
}

func NewRazorpay(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
		secret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrGateway, err)
	}
	return Order(body), nil
}

func (g *RazorpayGateway) FetchOrder(orderID string) (Order, error) {
	body, err := g.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch order %s: %v", ErrGateway, orderID, err)
	}
	return Order(body), nil
}

func (g *RazorpayGateway) FetchPayment(paymentID string) (Payment, error) {
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch payment %s: %v", ErrGateway, paymentID, err)
	}
	return Payment(body), nil
}

// VerifySignature recomputes the HMAC-SHA256 over "orderID|paymentID" with
// the key secret and compares it to the supplied signature.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.secret)
}
