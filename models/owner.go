package models

import "time"

// Owner is the customer account that bookings hang off. Account signup and
// retrieval live outside this service; the row exists so bookings have a
// stable owner key.
type Owner struct {
	OwnerID   uint      `gorm:"primaryKey" json:"owner_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Bookings  []Booking `json:"bookings" gorm:"foreignKey:OwnerEmail;references:Email"`
}
