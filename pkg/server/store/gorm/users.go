package gorm

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/satchelhq/satchel/pkg/model"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// dummyHash is a bcrypt hash compared against when the username does not
// exist, so the missing-user path costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("satchel-no-such-user"), bcrypt.DefaultCost)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser hashes the password and inserts the user row.
func (s *UsersStore) CreateUser(ctx context.Context, firstName, lastName, username, rawPassword string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("users: failed to hash password for %q: %v", username, err)
		return 0, store.ErrUserCreateFailed
	}

	user := model.User{
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		Password:  string(hash),
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrDuplicateUsername
		}
		log.Printf("users: failed to create user %q: %v", username, err)
		return 0, store.ErrUserCreateFailed
	}

	return user.ID, nil
}

// Authenticate verifies a username/password pair.
func (s *UsersStore) Authenticate(ctx context.Context, username, rawPassword string) (int64, error) {
	var user model.User
	tx := s.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if tx.Error != nil {
		// Burn a bcrypt compare anyway so response timing does not reveal
		// whether the username exists.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(rawPassword))
		if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			log.Printf("users: lookup failed for %q: %v", username, tx.Error)
		}
		return 0, store.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(rawPassword)); err != nil {
		return 0, store.ErrInvalidCredentials
	}

	return user.ID, nil
}

// ByID looks a user up by id.
func (s *UsersStore) ByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	tx := s.db.WithContext(ctx).Where("id = ?", id).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}
