package gorm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/satchelhq/satchel/pkg/model"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// Ensure RefreshTokensStore implements store.RefreshTokensStore
var _ store.RefreshTokensStore = (*RefreshTokensStore)(nil)

// RefreshTokensStore implements store.RefreshTokensStore using GORM
type RefreshTokensStore struct {
	db *gorm.DB
}

// NewRefreshTokensStore creates a new RefreshTokensStore
func NewRefreshTokensStore(db *gorm.DB) *RefreshTokensStore {
	return &RefreshTokensStore{db: db}
}

// Create inserts a refresh token row.
func (s *RefreshTokensStore) Create(ctx context.Context, userID int64, token string, expiration time.Time) error {
	return s.db.WithContext(ctx).Create(&model.RefreshToken{
		UserID:     userID,
		Token:      token,
		Expiration: expiration,
	}).Error
}

// IsValid reports whether an unexpired token with that exact string exists
// for the user. Tokens are matched on the stored expiration, so a token
// past its expiry is invalid even though the row still exists.
func (s *RefreshTokensStore) IsValid(ctx context.Context, userID int64, token string) (bool, error) {
	var row model.RefreshToken
	tx := s.db.WithContext(ctx).
		Where("user_id = ? AND token = ? AND expiration > ?", userID, token, time.Now()).
		First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, tx.Error
	}
	return true, nil
}
