package endpoints

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/satchelhq/satchel/pkg/model"
	"github.com/satchelhq/satchel/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) CreateUser(ctx context.Context, firstName, lastName, username, rawPassword string) (int64, error) {
	args := m.Called(firstName, lastName, username, rawPassword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsersStore) Authenticate(ctx context.Context, username, rawPassword string) (int64, error) {
	args := m.Called(username, rawPassword)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsersStore) ByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockRefreshTokensStore implements store.RefreshTokensStore for testing
type MockRefreshTokensStore struct {
	mock.Mock
}

func NewMockRefreshTokensStore() *MockRefreshTokensStore {
	return &MockRefreshTokensStore{}
}

func (m *MockRefreshTokensStore) Create(ctx context.Context, userID int64, token string, expiration time.Time) error {
	args := m.Called(userID, token, expiration)
	return args.Error(0)
}

func (m *MockRefreshTokensStore) IsValid(ctx context.Context, userID int64, token string) (bool, error) {
	args := m.Called(userID, token)
	return args.Bool(0), args.Error(1)
}

// MockInventoryStore implements store.InventoryStore for testing
type MockInventoryStore struct {
	mock.Mock
}

func NewMockInventoryStore() *MockInventoryStore {
	return &MockInventoryStore{}
}

func (m *MockInventoryStore) GetOrCreateItem(ctx context.Context, name, description string) (*model.Item, error) {
	args := m.Called(name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockInventoryStore) AddItem(ctx context.Context, userID int64, name, description string) (*model.Item, error) {
	args := m.Called(userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockInventoryStore) AddItems(ctx context.Context, userID int64, entries []store.ItemInput) error {
	args := m.Called(userID, entries)
	return args.Error(0)
}

func (m *MockInventoryStore) SubtractItem(ctx context.Context, userID int64, itemID uuid.UUID, amount int) ([]store.InventoryEntry, error) {
	args := m.Called(userID, itemID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.InventoryEntry), args.Error(1)
}

func (m *MockInventoryStore) UserInventory(ctx context.Context, userID int64) ([]store.InventoryEntry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.InventoryEntry), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}
