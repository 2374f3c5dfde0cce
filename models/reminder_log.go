// models/reminder_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records the outcome of an appointment reminder SMS so a
// booking is not texted twice for the same day.
type ReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BookingID uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	Phone     string    `gorm:"type:varchar(15)" json:"phone"`
	Message   string    `gorm:"type:text" json:"message"`

	Status       string `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`

	SentAt    time.Time `json:"sent_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
