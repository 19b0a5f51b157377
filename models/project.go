package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project categories shown on the marketing site. The gallery additionally
// allows CategoryGeneral.
const (
	CategoryCCTV       = "CCTV Security"
	CategoryIT         = "IT Solutions"
	CategoryNetworking = "Networking"
	CategoryGeneral    = "General"
)

// Testimonial is the optional client quote attached to a project, stored as a
// single jsonb column.
type Testimonial struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Position string `json:"position"`
	Company  string `json:"company"`
}

// Project represents a completed engagement shown in the portfolio section.
// Sort order is a pure display ordering; values need not be unique. Slug
// uniqueness is enforced by the database index, not by application checks.
type Project struct {
	ID               uuid.UUID                        `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title            string                           `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string                           `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Category         string                           `json:"category" db:"category" gorm:"type:text;not null"`
	Client           string                           `json:"client" db:"client" gorm:"type:text;not null"`
	Location         string                           `json:"location" db:"location" gorm:"type:text;not null"`
	Date             string                           `json:"date" db:"date" gorm:"type:text;not null"`
	Duration         string                           `json:"duration" db:"duration" gorm:"type:text;not null"`
	Budget           string                           `json:"budget" db:"budget" gorm:"type:text;not null"`
	Description      string                           `json:"description" db:"description" gorm:"type:text;not null"`
	FeaturedImageURL *string                          `json:"featured_image_url,omitempty" db:"featured_image_url" gorm:"type:text"`
	Features         datatypes.JSONSlice[string]      `json:"features" db:"features" gorm:"type:jsonb"`
	Challenges       datatypes.JSONSlice[string]      `json:"challenges" db:"challenges" gorm:"type:jsonb"`
	Solutions        datatypes.JSONSlice[string]      `json:"solutions" db:"solutions" gorm:"type:jsonb"`
	Results          datatypes.JSONSlice[string]      `json:"results" db:"results" gorm:"type:jsonb"`
	Tags             datatypes.JSONSlice[string]      `json:"tags" db:"tags" gorm:"type:jsonb"`
	Testimonial      *datatypes.JSONType[Testimonial] `json:"testimonial,omitempty" db:"testimonial" gorm:"type:jsonb"`
	IsFeatured       bool                             `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	IsPublished      bool                             `json:"is_published" db:"is_published" gorm:"not null;default:false"`
	SortOrder        int                              `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt        time.Time                        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time                        `json:"updated_at" db:"updated_at"`

	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}
