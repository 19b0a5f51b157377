package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectImage belongs to exactly one Project.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_images_project_id;constraint:OnDelete:CASCADE"`
	ImageURL  string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	AltText   *string   `json:"alt_text,omitempty" db:"alt_text" gorm:"type:text"`
	SortOrder int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (ProjectImage) TableName() string {
	return "project_images"
}
