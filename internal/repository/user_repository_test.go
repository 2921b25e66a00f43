package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-service/internal/domain"
)

var userColumns = []string{"id", "username", "email", "first_name", "last_name", "created_at", "updated_at"}

func TestUserRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM users ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "alice", "alice@example.com", "Alice", nil, now, nil).
			AddRow(int64(2), "bob", "bob@example.com", nil, nil, now, now))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Nil(t, users[0].LastName)
	assert.NotNil(t, users[1].UpdatedAt)
}

func TestUserRepositoryGetByIDMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`FROM users WHERE id=\$1`).WithArgs(int64(8)).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO users \(username, email, first_name, last_name, created_at\)`).
		WithArgs("alice", "alice@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Create(context.Background(), domain.UserChanges{Username: ptr("alice"), Email: ptr("alice@example.com")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestUserRepositoryUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET "email"=\$1,"updated_at"=NOW\(\) WHERE \("id" = \$2\)`).
		WithArgs("new@example.com", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 1, domain.UserChanges{Email: ptr("new@example.com")}))
}

func TestUserRepositoryDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`DELETE FROM users WHERE id=\$1`).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), sql.ErrNoRows)
}
