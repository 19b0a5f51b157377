package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Database struct {
	adminUserRepo    *AdminUserRepo
	authIdentityRepo *AuthIdentityRepo
	sessionRepo      *SessionRepo
	projectRepo      *ProjectRepo
	projectImageRepo *ProjectImageRepo
	galleryImageRepo *GalleryImageRepo
	brandRepo        *BrandRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		adminUserRepo:    NewAdminUserRepo(db),
		authIdentityRepo: NewAuthIdentityRepo(db),
		sessionRepo:      NewSessionRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		galleryImageRepo: NewGalleryImageRepo(db),
		brandRepo:        NewBrandRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

func (d Database) AuthIdentityRepo() *AuthIdentityRepo {
	return d.authIdentityRepo
}

func (d Database) SessionRepo() *SessionRepo {
	return d.sessionRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

func (d Database) GalleryImageRepo() *GalleryImageRepo {
	return d.galleryImageRepo
}

func (d Database) BrandRepo() *BrandRepo {
	return d.brandRepo
}

// Migrate applies all embedded schema migrations up. It is safe to call on
// every startup; an up-to-date schema is not an error.
func Migrate(db *gorm.DB) error {
	srcDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("init migration source: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("obtain sql db: %w", err)
	}

	dbDriver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
