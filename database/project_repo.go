package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by sort_order ascending, with their images
// eager-loaded in display order. When includeUnpublished is false only
// published rows are returned (the public marketing surface).
func (r *ProjectRepo) FindAll(includeUnpublished bool) ([]*models.Project, error) {
	var projects []*models.Project
	query := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.sort_order ASC")
		}).
		Order("sort_order ASC")
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches. When
// includeUnpublished is false an unpublished project is treated as absent.
func (r *ProjectRepo) FindByID(id uuid.UUID, includeUnpublished bool) (*models.Project, error) {
	var project models.Project
	query := r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("project_images.sort_order ASC")
		}).
		Where("id = ?", id)
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	err := query.First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database. Last write wins; there
// is no optimistic-lock check.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id. Owned project_images rows
// go with it via the cascade.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, id).Error
}
