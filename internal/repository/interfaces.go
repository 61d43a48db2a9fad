package repository

import (
	"context"

	"github.com/dgz9/codetype/internal/models"
)

// LeaderboardRepository handles score persistence.
type LeaderboardRepository interface {
	Insert(ctx context.Context, sub models.ScoreSubmission) (*models.LeaderboardEntry, error)
	List(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

// PrefsRepository is the opaque key-to-JSON-blob preference store.
// Get returns nil for an unset key. Implementations never interpret
// the blobs; decoding and defaulting happen in the service layer.
type PrefsRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
