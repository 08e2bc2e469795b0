package model

import "time"

// RefreshToken is a long-lived opaque credential tied to a user.
// Multiple unexpired tokens may exist for the same user; tokens are not
// rotated or deleted on use.
type RefreshToken struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     int64     `gorm:"column:user_id"`
	Token      string    `gorm:"column:token;uniqueIndex"`
	Expiration time.Time `gorm:"column:expiration"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Expired reports whether the token's expiration has passed.
func (t *RefreshToken) Expired() bool {
	return time.Now().After(t.Expiration)
}
