package gorm

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokensCreate(t *testing.T) {
	db, mock := newMockDB(t)
	tokens := NewRefreshTokensStore(db)

	expiration := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
		WithArgs(int64(42), "opaque-token", expiration).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	err := tokens.Create(context.Background(), 42, "opaque-token", expiration)
	require.NoError(t, err)

	verifyExpectations(t, mock)
}

func TestRefreshTokensIsValid(t *testing.T) {
	t.Run("unexpired token for the user", func(t *testing.T) {
		db, mock := newMockDB(t)
		tokens := NewRefreshTokensStore(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "token", "expiration"}).
			AddRow(int64(1), int64(42), "opaque-token", time.Now().Add(time.Hour))
		mock.ExpectQuery(`SELECT \* FROM "refresh_tokens"`).
			WithArgs(int64(42), "opaque-token", sqlmock.AnyArg()).
			WillReturnRows(rows)

		valid, err := tokens.IsValid(context.Background(), 42, "opaque-token")
		require.NoError(t, err)
		assert.True(t, valid)
		verifyExpectations(t, mock)
	})

	t.Run("no matching row", func(t *testing.T) {
		db, mock := newMockDB(t)
		tokens := NewRefreshTokensStore(db)

		// Covers an unknown token, an expired token and a token that
		// belongs to another user; the WHERE clause filters all three.
		mock.ExpectQuery(`SELECT \* FROM "refresh_tokens"`).
			WithArgs(int64(42), "opaque-token", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		valid, err := tokens.IsValid(context.Background(), 42, "opaque-token")
		require.NoError(t, err)
		assert.False(t, valid)
		verifyExpectations(t, mock)
	})
}
