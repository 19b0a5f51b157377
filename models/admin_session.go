package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminSession is the server-side record backing a session token. The row is
// the source of truth for revocation: deleting it invalidates the token even
// if the token itself has not expired.
type AdminSession struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" gorm:"type:uuid;not null;index:idx_admin_sessions_user_id"`
	TokenID   string    `json:"token_id" db:"token_id" gorm:"type:text;not null;uniqueIndex:idx_admin_sessions_token_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
