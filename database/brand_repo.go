package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type BrandRepo struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) *BrandRepo {
	return &BrandRepo{db}
}

// FindAll returns brands ordered by display_order ascending. When
// includeInactive is false only active rows are returned.
func (r *BrandRepo) FindAll(includeInactive bool) ([]*models.Brand, error) {
	var brands []*models.Brand
	query := r.db.Order("display_order ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&brands).Error
	return brands, err
}

// FindByID returns a brand by its ID, or nil when no row matches.
func (r *BrandRepo) FindByID(id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// Add inserts a new brand into the database
func (r *BrandRepo) Add(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// Update updates an existing brand in the database
func (r *BrandRepo) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete removes a brand from the database by id
func (r *BrandRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Brand{}, id).Error
}
