package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dgz9/codetype/internal/models"
)

// MockLeaderboardRepository is a mock implementation of repository.LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Insert(ctx context.Context, sub models.ScoreSubmission) (*models.LeaderboardEntry, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) List(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}
