package services

import (
	"context"
	"strings"

	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/repository"
	"github.com/dgz9/codetype/internal/tracker"
)

// LeaderboardService handles score listing and validated submission
type LeaderboardService interface {
	Top(ctx context.Context, mode string, limit int) ([]models.LeaderboardEntry, error)
	Submit(ctx context.Context, sub models.ScoreSubmission) (*models.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo     repository.LeaderboardRepository
	maxLimit int
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(repo repository.LeaderboardRepository, maxLimit int) LeaderboardService {
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &leaderboardService{repo: repo, maxLimit: maxLimit}
}

func (s *leaderboardService) Top(ctx context.Context, mode string, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("fetching leaderboard: mode=%s, limit=%d", mode, limit)

	if limit <= 0 {
		limit = 10
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	entries, err := s.repo.List(ctx, models.LeaderboardFilter{Mode: mode, Limit: limit})
	if err != nil {
		log.Error("failed to list leaderboard: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

func (s *leaderboardService) Submit(ctx context.Context, sub models.ScoreSubmission) (*models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting score: name=%s, wpm=%d, accuracy=%d, mode=%s", sub.Name, sub.WPM, sub.Accuracy, sub.Mode)

	sub.Name = strings.TrimSpace(sub.Name)
	if len(sub.Name) < 1 || len(sub.Name) > 20 {
		return nil, errors.NewValidationError("name", "must be 1-20 characters")
	}
	if sub.WPM < 1 || sub.WPM > 500 {
		return nil, errors.NewValidationError("wpm", "must be between 1 and 500")
	}
	if sub.Accuracy < 0 || sub.Accuracy > 100 {
		return nil, errors.NewValidationError("accuracy", "must be between 0 and 100")
	}
	// The authoritative gate: the client refuses below the same floor,
	// but the server re-validates everything it is handed.
	if sub.Accuracy < tracker.SubmitAccuracyFloor {
		return nil, errors.NewValidationError("accuracy", "need at least 80% accuracy to submit")
	}
	if sub.Mode == "" {
		sub.Mode = models.ModePractice
	}

	entry, err := s.repo.Insert(ctx, sub)
	if err != nil {
		log.Error("failed to insert score: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("score submitted: id=%d, name=%s, wpm=%d", entry.ID, entry.Name, entry.WPM)
	return entry, nil
}
