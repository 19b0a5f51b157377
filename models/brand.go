package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a partner or vendor logo shown in the brands strip. Ordering uses
// display_order; like sort_order elsewhere it is display-only and values need
// not be unique.
type Brand struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category     string    `json:"category" db:"category" gorm:"type:text;not null"`
	LogoURL      *string   `json:"logo_url,omitempty" db:"logo_url" gorm:"type:text"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
	IsActive     bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}
