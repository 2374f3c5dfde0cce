package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryFacial   ServiceCategory = "facial"
	CategoryHair     ServiceCategory = "hair"
	CategoryMakeup   ServiceCategory = "makeup"
	CategoryManicure ServiceCategory = "manicure"
	CategoryMassage  ServiceCategory = "massage"
	CategoryWaxing   ServiceCategory = "waxing"
)

var ServiceCategories = []ServiceCategory{
	CategoryFacial,
	CategoryHair,
	CategoryMakeup,
	CategoryManicure,
	CategoryMassage,
	CategoryWaxing,
}

func (c ServiceCategory) IsValid() bool {
	for _, category := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Service is a treatment from the catalog. Rows are seeded once and
// maintained by staff, customers only read them.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `json:"image"`
	Category    ServiceCategory `gorm:"type:varchar(100);not null" json:"category"`

	IsHomeService bool `gorm:"default:false" json:"is_home_service"`
	Duration      int  `gorm:"default:60" json:"duration"` // in minutes

	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
