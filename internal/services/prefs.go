package services

import (
	"context"
	"encoding/json"

	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/repository"
)

// Preference keys. One JSON blob per key, last write wins.
const (
	prefHighScore      = "codetype-highscore"
	prefStreak         = "codetype-streak"
	prefWpmHistory     = "codetype-wpm-history"
	prefAchieveStats   = "codetype-achievement-stats"
	prefUnlocked       = "codetype-unlocked-achievements"
	prefCustomSnippets = "codetype-custom-snippets"
	prefSound          = "codetype-sound"
	prefDailyBest      = "codetype-daily-best"
	prefPlayerName     = "codetype-name"
)

// loadPref decodes a stored preference into T. A missing key, a storage
// failure or malformed JSON all yield the default: preference reads
// degrade, they never propagate errors into scoring state.
func loadPref[T any](ctx context.Context, prefs repository.PrefsRepository, key string, def T) T {
	log := logger.FromContext(ctx)

	blob, err := prefs.Get(ctx, key)
	if err != nil {
		log.Warn("failed to read preference %s, using default: %v", key, err)
		return def
	}
	if blob == nil {
		return def
	}
	var out T
	if err := json.Unmarshal(blob, &out); err != nil {
		log.Warn("malformed preference %s, using default: %v", key, err)
		return def
	}
	return out
}

func savePref(ctx context.Context, prefs repository.PrefsRepository, key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return prefs.Set(ctx, key, blob)
}
