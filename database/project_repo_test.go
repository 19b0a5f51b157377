package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepoFindAllPublishedOnly(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewProjectRepo(db)

	projectID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE is_published = \$1 ORDER BY sort_order ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published", "sort_order"}).
			AddRow(projectID.String(), "Resort CCTV Rollout", true, 1))

	// Preload of owned images in display order
	mock.ExpectQuery(`SELECT \* FROM "project_images" WHERE "project_images"\."project_id" = \$1 ORDER BY project_images\.sort_order ASC`).
		WithArgs(projectID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "image_url", "sort_order"}).
			AddRow(uuid.NewString(), projectID.String(), "https://cdn.example.com/1.jpg", 1))

	projects, err := repo.FindAll(false)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Resort CCTV Rollout", projects[0].Title)
	require.Len(t, projects[0].Images, 1)
	assert.Equal(t, "https://cdn.example.com/1.jpg", projects[0].Images[0].ImageURL)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepoFindAllIncludesUnpublished(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" ORDER BY sort_order ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	_, err := repo.FindAll(true)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepoFindByIDMissingRowIsNil(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	project, err := repo.FindByID(uuid.New(), true)
	require.NoError(t, err)
	assert.Nil(t, project)
}

func TestProjectRepoFindByIDUnpublishedHiddenFromPublic(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewProjectRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE id = \$1 AND is_published = \$2`).
		WithArgs(sqlmock.AnyArg(), true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	project, err := repo.FindByID(uuid.New(), false)
	require.NoError(t, err)
	assert.Nil(t, project)
}
