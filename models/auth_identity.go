package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthIdentity holds the login credential for an admin account. It shares its
// id with the AdminUser row; a credential without a matching active AdminUser
// cannot sign in.
type AuthIdentity struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (AuthIdentity) TableName() string {
	return "auth_identities"
}
