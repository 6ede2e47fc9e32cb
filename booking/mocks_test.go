package booking

import (
	"context"
	"sync"

	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

type mockStore struct {
	m       sync.Mutex
	owners  map[string]*models.Owner
	updates []map[string]interface{}

	appendErr error
	updateErr error
}

func newMockStore(owners ...*models.Owner) *mockStore {
	s := &mockStore{owners: make(map[string]*models.Owner)}
	for _, o := range owners {
		s.owners[o.Email] = o
	}
	return s
}

func (s *mockStore) FindOwner(_ context.Context, email string) (*models.Owner, error) {
	s.m.Lock()
	defer s.m.Unlock()
	o, ok := s.owners[email]
	if !ok {
		return nil, ErrOwnerNotFound
	}
	return o, nil
}

func (s *mockStore) AppendBooking(_ context.Context, b *models.Booking) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	o, ok := s.owners[b.OwnerEmail]
	if !ok {
		return ErrOwnerNotFound
	}
	o.Bookings = append(o.Bookings, *b)
	return nil
}

func (s *mockStore) FindBooking(_ context.Context, email, bookingID string) (*models.Booking, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.find(email, bookingID)
}

func (s *mockStore) FindBookingByOrderID(_ context.Context, orderID string) (*models.Booking, error) {
	s.m.Lock()
	defer s.m.Unlock()
	for _, o := range s.owners {
		for i := range o.Bookings {
			if o.Bookings[i].OrderID == orderID {
				return &o.Bookings[i], nil
			}
		}
	}
	return nil, ErrBookingNotFound
}

func (s *mockStore) BindOrder(_ context.Context, email, bookingID, orderID string) error {
	s.m.Lock()
	defer s.m.Unlock()
	b, err := s.find(email, bookingID)
	if err != nil {
		return err
	}
	b.OrderID = orderID
	return nil
}

func (s *mockStore) UpdateBookingFields(_ context.Context, email, bookingID string, fields map[string]interface{}) error {
	s.m.Lock()
	defer s.m.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	b, err := s.find(email, bookingID)
	if err != nil {
		return err
	}
	s.updates = append(s.updates, fields)
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

func (s *mockStore) find(email, bookingID string) (*models.Booking, error) {
	o, ok := s.owners[email]
	if !ok {
		return nil, ErrBookingNotFound
	}
	for i := range o.Bookings {
		if o.Bookings[i].BookingID == bookingID {
			return &o.Bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}
