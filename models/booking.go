package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

var ErrSelfBooking = errors.New("client and vendor cannot be the same user")

type Booking struct {
	gorm.Model
	Reference   string        `json:"reference" gorm:"uniqueIndex"`
	ClientID    uint          `json:"client_id"`
	Client      User          `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	VendorID    uint          `json:"vendor_id"`
	Vendor      User          `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	ServiceID   uint          `json:"service_id"`
	Service     Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	TotalAmount float64       `json:"total_amount"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ClientID == b.VendorID {
		return ErrSelfBooking
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Reference == "" {
		b.Reference = uuid.NewString()
	}
	return nil
}
