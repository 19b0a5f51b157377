package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is a standalone image shown in the gallery section. Only rows
// with IsActive set are visible on the public site.
type GalleryImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title     *string   `json:"title,omitempty" db:"title" gorm:"type:text"`
	ImageURL  string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	AltText   *string   `json:"alt_text,omitempty" db:"alt_text" gorm:"type:text"`
	Category  *string   `json:"category,omitempty" db:"category" gorm:"type:text"`
	SortOrder int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	IsActive  bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
