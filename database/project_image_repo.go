package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByID returns a project image by its ID, or nil when no row matches.
func (r *ProjectImageRepo) FindByID(id uuid.UUID) (*models.ProjectImage, error) {
	var image models.ProjectImage
	err := r.db.First(&image, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// Delete removes a project image from the database by id
func (r *ProjectImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectImage{}, id).Error
}
