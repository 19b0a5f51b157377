package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zenatech-mv/site-backend/models"
)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db}
}

// Add inserts a new session row into the database
func (r *SessionRepo) Add(session *models.AdminSession) error {
	return r.db.Create(session).Error
}

// FindByTokenID returns the session with the given token id (jti), or nil
// when none exists.
func (r *SessionRepo) FindByTokenID(tokenID string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := r.db.Where("token_id = ?", tokenID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// DeleteByTokenID removes the session with the given token id. Deleting a
// session that does not exist is not an error.
func (r *SessionRepo) DeleteByTokenID(tokenID string) error {
	return r.db.Where("token_id = ?", tokenID).Delete(&models.AdminSession{}).Error
}

// DeleteExpired removes all sessions past their expiry. Called at startup to
// keep the table from accumulating stale rows.
func (r *SessionRepo) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.AdminSession{}).Error
}
