package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles recognized by the content-management interface.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// AdminUser is a privileged account permitted to use the admin panel. It
// mirrors an AuthIdentity by id; the identity proves who you are, this row
// decides whether you are allowed in.
type AdminUser struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string     `json:"email" db:"email" gorm:"type:text;not null;unique"`
	FullName  string     `json:"full_name" db:"full_name" gorm:"type:text;not null"`
	Role      string     `json:"role" db:"role" gorm:"type:text;not null;default:editor"`
	IsActive  bool       `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	LastLogin *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
