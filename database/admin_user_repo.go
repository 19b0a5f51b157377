package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindActiveByID returns the active admin account with the given id, or nil
// when none exists. Inactive rows are treated as absent; an inactive account
// must never be treated as authenticated.
func (r *AdminUserRepo) FindActiveByID(id uuid.UUID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindActiveByEmail returns the active admin account with the given email, or
// nil when none exists.
func (r *AdminUserRepo) FindActiveByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin stamps the account's last_login with the current time.
func (r *AdminUserRepo) TouchLastLogin(id uuid.UUID) error {
	return r.db.Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}
