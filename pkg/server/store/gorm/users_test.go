package gorm

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/satchelhq/satchel/pkg/server/store"
)

func TestCreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("Alice", "Smith", "alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	id, err := users.CreateUser(context.Background(), "Alice", "Smith", "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	verifyExpectations(t, mock)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})
	mock.ExpectRollback()

	_, err := users.CreateUser(context.Background(), "Alice", "Smith", "alice", "hunter22")
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	verifyExpectations(t, mock)
}

func TestCreateUser_OtherFailure(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsersStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "53300"})
	mock.ExpectRollback()

	_, err := users.CreateUser(context.Background(), "Alice", "Smith", "alice", "hunter22")
	// The underlying cause is logged, not surfaced.
	assert.ErrorIs(t, err, store.ErrUserCreateFailed)

	verifyExpectations(t, mock)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "first_name", "last_name", "username", "password"}).
			AddRow(int64(1), "Alice", "Smith", "alice", string(hash))
	}

	t.Run("valid credentials", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs("alice").
			WillReturnRows(userRow())

		id, err := users.Authenticate(context.Background(), "alice", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		verifyExpectations(t, mock)
	})

	t.Run("wrong password", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs("alice").
			WillReturnRows(userRow())

		_, err := users.Authenticate(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
		verifyExpectations(t, mock)
	})

	t.Run("unknown username", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs("mallory").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		// Same error as a wrong password, indistinguishable to callers.
		_, err := users.Authenticate(context.Background(), "mallory", "hunter22")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
		verifyExpectations(t, mock)
	})
}

func TestByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(int64(1), "alice"))

		user, err := users.ByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		verifyExpectations(t, mock)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		users := NewUsersStore(db)

		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := users.ByID(context.Background(), 99)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		verifyExpectations(t, mock)
	})
}
