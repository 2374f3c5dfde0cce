package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a curated customer quote entered by staff. The service
// name is free text, it is not tied to a catalog row.
type Testimonial struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`
	Service string    `gorm:"type:varchar(100)" json:"service"`
	Rating  int       `gorm:"not null" json:"rating"` // 1-5
	Comment string    `gorm:"type:text" json:"comment"`
	Image   string    `json:"image"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
