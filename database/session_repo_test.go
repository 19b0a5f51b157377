package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepoFindByTokenID(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewSessionRepo(db)

	tokenID := uuid.NewString()
	mock.ExpectQuery(`SELECT \* FROM "admin_sessions" WHERE token_id = \$1`).
		WithArgs(tokenID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_id", "expires_at"}).
			AddRow(uuid.NewString(), uuid.NewString(), tokenID, time.Now().Add(time.Hour)))

	session, err := repo.FindByTokenID(tokenID)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, tokenID, session.TokenID)
}

func TestSessionRepoFindByTokenIDMissingRowIsNil(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewSessionRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "admin_sessions" WHERE token_id = \$1`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_id"}))

	session, err := repo.FindByTokenID("revoked")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepoDeleteExpired(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewSessionRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "admin_sessions" WHERE expires_at < \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteExpired())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepoDeleteByTokenID(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewSessionRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "admin_sessions" WHERE token_id = \$1`).
		WithArgs("jti-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteByTokenID("jti-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
