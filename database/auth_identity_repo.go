package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type AuthIdentityRepo struct {
	db *gorm.DB
}

func NewAuthIdentityRepo(db *gorm.DB) *AuthIdentityRepo {
	return &AuthIdentityRepo{db}
}

// FindByEmail returns the credential record for an email, or nil when none
// exists.
func (r *AuthIdentityRepo) FindByEmail(email string) (*models.AuthIdentity, error) {
	var identity models.AuthIdentity
	err := r.db.Where("email = ?", email).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &identity, nil
}
