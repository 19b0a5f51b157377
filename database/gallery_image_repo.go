package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type GalleryImageRepo struct {
	db *gorm.DB
}

func NewGalleryImageRepo(db *gorm.DB) *GalleryImageRepo {
	return &GalleryImageRepo{db}
}

// FindAll returns gallery images ordered by sort_order ascending. When
// includeInactive is false only active rows are returned.
func (r *GalleryImageRepo) FindAll(includeInactive bool) ([]*models.GalleryImage, error) {
	var images []*models.GalleryImage
	query := r.db.Order("sort_order ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&images).Error
	return images, err
}

// FindByID returns a gallery image by its ID, or nil when no row matches.
func (r *GalleryImageRepo) FindByID(id uuid.UUID) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Add inserts a new gallery image into the database
func (r *GalleryImageRepo) Add(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing gallery image in the database
func (r *GalleryImageRepo) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

// Delete removes a gallery image from the database by id
func (r *GalleryImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}
