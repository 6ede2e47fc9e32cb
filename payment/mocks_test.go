package payment

import (
	"context"
	"sync"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/gateway"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

type createCall struct {
	amountMinor int64
	currency    string
	receipt     string
	notes       map[string]interface{}
}

type mockGateway struct {
	m sync.Mutex

	createResp gateway.Order
	createErr  error
	created    []createCall

	fetchOrderResp gateway.Order
	fetchOrderErr  error

	fetchPaymentResp  gateway.Payment
	fetchPaymentErr   error
	fetchPaymentCalls []string

	sigValid bool
}

func (g *mockGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (gateway.Order, error) {
	g.m.Lock()
	defer g.m.Unlock()
	g.created = append(g.created, createCall{amountMinor, currency, receipt, notes})
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResp, nil
}

func (g *mockGateway) FetchOrder(string) (gateway.Order, error) {
	g.m.Lock()
	defer g.m.Unlock()
	if g.fetchOrderErr != nil {
		return nil, g.fetchOrderErr
	}
	return g.fetchOrderResp, nil
}

func (g *mockGateway) FetchPayment(paymentID string) (gateway.Payment, error) {
	g.m.Lock()
	defer g.m.Unlock()
	g.fetchPaymentCalls = append(g.fetchPaymentCalls, paymentID)
	if g.fetchPaymentErr != nil {
		return nil, g.fetchPaymentErr
	}
	return g.fetchPaymentResp, nil
}

func (g *mockGateway) VerifySignature(string, string, string) bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.sigValid
}

// memStore is an in-memory booking.OwnerStore used to drive the real Ledger
// in these tests.
type memStore struct {
	m      sync.Mutex
	owners map[string]*models.Owner
}

func newMemStore(owners ...*models.Owner) *memStore {
	s := &memStore{owners: make(map[string]*models.Owner)}
	for _, o := range owners {
		s.owners[o.Email] = o
	}
	return s
}

func (s *memStore) FindOwner(_ context.Context, email string) (*models.Owner, error) {
	s.m.Lock()
	defer s.m.Unlock()
	o, ok := s.owners[email]
	if !ok {
		return nil, booking.ErrOwnerNotFound
	}
	return o, nil
}

func (s *memStore) AppendBooking(_ context.Context, b *models.Booking) error {
	s.m.Lock()
	defer s.m.Unlock()
	o, ok := s.owners[b.OwnerEmail]
	if !ok {
		return booking.ErrOwnerNotFound
	}
	o.Bookings = append(o.Bookings, *b)
	return nil
}

func (s *memStore) FindBooking(_ context.Context, email, bookingID string) (*models.Booking, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.find(email, bookingID)
}

func (s *memStore) FindBookingByOrderID(_ context.Context, orderID string) (*models.Booking, error) {
	s.m.Lock()
	defer s.m.Unlock()
	for _, o := range s.owners {
		for i := range o.Bookings {
			if o.Bookings[i].OrderID == orderID {
				return &o.Bookings[i], nil
			}
		}
	}
	return nil, booking.ErrBookingNotFound
}

func (s *memStore) BindOrder(_ context.Context, email, bookingID, orderID string) error {
	s.m.Lock()
	defer s.m.Unlock()
	b, err := s.find(email, bookingID)
	if err != nil {
		return err
	}
	b.OrderID = orderID
	return nil
}

func (s *memStore) UpdateBookingFields(_ context.Context, email, bookingID string, fields map[string]interface{}) error {
	s.m.Lock()
	defer s.m.Unlock()
	b, err := s.find(email, bookingID)
	if err != nil {
		return err
	}
	for col, v := range fields {
		switch col {
		case "pin":
			b.Pin = v.(string)
		case "payment_status":
			b.PaymentStatus = v.(string)
		case "transaction_id":
			b.TransactionID = v.(string)
		case "order_id":
			b.OrderID = v.(string)
		case "payment_mode":
			b.PaymentMode = v.(string)
		case "failure_reason":
			b.FailureReason, _ = v.(*string)
		case "amount":
			b.Amount = v.(float64)
		}
	}
	return nil
}

func (s *memStore) find(email, bookingID string) (*models.Booking, error) {
	o, ok := s.owners[email]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	for i := range o.Bookings {
		if o.Bookings[i].BookingID == bookingID {
			return &o.Bookings[i], nil
		}
	}
	return nil, booking.ErrBookingNotFound
}

func seedBooking(b models.Booking) (*memStore, *booking.Ledger) {
	owner := &models.Owner{Email: b.OwnerEmail, Bookings: []models.Booking{b}}
	store := newMemStore(owner)
	return store, booking.NewLedger(store)
}
