package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusUsed      BookingStatus = "used"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusUsed, BookingStatusCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// StatusPair is a (booking status, payment status) combination.
type StatusPair struct {
	Status        BookingStatus
	PaymentStatus PaymentStatus
}

// RevenueCountable lists the only combinations that count toward revenue.
var RevenueCountable = []StatusPair{
	{BookingStatusConfirmed, PaymentStatusCompleted},
	{BookingStatusCompleted, PaymentStatusCompleted},
	{BookingStatusUsed, PaymentStatusCompleted},
}

func IsRevenueCountable(status BookingStatus, payment PaymentStatus) bool {
	for _, p := range RevenueCountable {
		if p.Status == status && p.PaymentStatus == payment {
			return true
		}
	}
	return false
}

type Booking struct {
	BaseModel
	TheaterID     uuid.UUID     `gorm:"type:uuid;index:idx_bookings_theater_time,priority:1;not null" json:"theater_id"`
	AccountID     uuid.UUID     `gorm:"type:uuid;index" json:"account_id"`
	TotalAmount   float64       `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	BookedAt      time.Time     `gorm:"index:idx_bookings_theater_time,priority:2;not null" json:"booked_at"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending';index" json:"payment_status"`

	// Seat labels as a JSON array, e.g. ["A1","A2"].
	Seats datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"seats"`

	Theater Theater `gorm:"foreignKey:TheaterID" json:"-"`
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}
