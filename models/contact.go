package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a message from the public contact form. Rows are append-only.
type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`
	Email   string    `gorm:"not null" json:"email"`
	Phone   string    `gorm:"type:varchar(15)" json:"phone"`
	Subject string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
