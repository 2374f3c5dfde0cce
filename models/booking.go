package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's scheduled instance of a service. Status starts
// at pending; the only self-service transition is pending -> cancelled,
// everything else is staff-driven.
type Booking struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	ServiceID uuid.UUID  `gorm:"type:uuid;index;not null" json:"service_id"`

	Date          time.Time     `gorm:"type:date;not null" json:"date"`
	Time          string        `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	Address       string        `gorm:"type:text;not null" json:"address"`
	IsHomeService bool          `gorm:"default:true" json:"is_home_service"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	SpecialRequests string  `gorm:"type:text" json:"special_requests"`
	TotalAmount     float64 `gorm:"type:decimal(10,2)" json:"total_amount"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Review  *Review  `gorm:"foreignKey:BookingID" json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the UUID and backfills the total amount from the
// service's listed price when no explicit amount was supplied.
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.TotalAmount == 0 {
		var service Service
		if err := tx.First(&service, "id = ?", b.ServiceID).Error; err != nil {
			return err
		}
		b.TotalAmount = service.Price
	}
	return
}

// CanCancel reports whether the booking is still in a state the customer
// may cancel themselves.
func (b *Booking) CanCancel() bool {
	return b.Status == BookingStatusPending
}
