package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPrefsRepository is a mock implementation of repository.PrefsRepository
type MockPrefsRepository struct {
	mock.Mock
}

func (m *MockPrefsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPrefsRepository) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockPrefsRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
