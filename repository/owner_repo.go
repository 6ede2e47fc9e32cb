package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kamalakar25/BeautyBliss-project-main/booking"
	"github.com/kamalakar25/BeautyBliss-project-main/models"
)

// OwnerRepo is the gorm-backed implementation of booking.OwnerStore.
type OwnerRepo struct{ db *gorm.DB }

func NewOwnerRepo(db *gorm.DB) *OwnerRepo {
	return &OwnerRepo{db: db}
}

func (r *OwnerRepo) Migrate() error {
	return r.db.AutoMigrate(&models.Owner{}, &models.Booking{})
}

// FindOwner loads an owner with their bookings in insertion order.
func (r *OwnerRepo) FindOwner(ctx context.Context, email string) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&owner, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrOwnerNotFound
		}
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepo) AppendBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *OwnerRepo) FindBooking(ctx context.Context, email, bookingID string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		First(&b, "owner_email = ? AND booking_id = ?", email, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *OwnerRepo) FindBookingByOrderID(ctx context.Context, orderID string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).First(&b, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// BindOrder overwrites the booking's current order id. Binding the same id
// twice is a no-op at the row level, so gorm reporting zero affected rows is
// only an error when the booking itself is missing.
func (r *OwnerRepo) BindOrder(ctx context.Context, email, bookingID, orderID string) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("owner_email = ? AND booking_id = ?", email, bookingID).
		Update("order_id", orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindBooking(ctx, email, bookingID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateBookingFields applies the field map as one UPDATE keyed by the
// (owner email, booking id) pair, never partially.
func (r *OwnerRepo) UpdateBookingFields(ctx context.Context, email, bookingID string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("owner_email = ? AND booking_id = ?", email, bookingID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}
