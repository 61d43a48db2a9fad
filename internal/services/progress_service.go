package services

import (
	"context"
	"time"

	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/repository"
	"github.com/dgz9/codetype/internal/tracker"
)

// ProgressUpdate is everything a client needs after recording one
// completed result: the new streak, cumulative stats, any freshly
// unlocked achievements (Toast is the single one to surface), and
// whether records moved.
type ProgressUpdate struct {
	Result         models.SessionResult    `json:"result"`
	Streak         models.StreakState      `json:"streak"`
	StreakAdvanced bool                    `json:"streak_advanced"`
	Stats          models.AchievementStats `json:"stats"`
	Unlocked       []tracker.Achievement   `json:"unlocked,omitempty"`
	Toast          *tracker.Achievement    `json:"toast,omitempty"`
	HighScore      *models.HighScore       `json:"high_score,omitempty"`
	NewHighScore   bool                    `json:"new_high_score"`
	DailyBest      *models.DailyBest       `json:"daily_best,omitempty"`
	NewDailyBest   bool                    `json:"new_daily_best"`
	CanSubmit      bool                    `json:"can_submit"`
}

// ProgressOverview is the read side: current streak, history, stats
// and settings.
type ProgressOverview struct {
	Streak       models.StreakState      `json:"streak"`
	History      []models.WpmEntry       `json:"history"`
	Stats        models.AchievementStats `json:"stats"`
	UnlockedIDs  []string                `json:"unlocked_ids"`
	Achievements []tracker.Achievement   `json:"achievements"`
	HighScore    *models.HighScore       `json:"high_score,omitempty"`
	SoundEnabled bool                    `json:"sound_enabled"`
	PlayerName   string                  `json:"player_name,omitempty"`
}

// ProgressService folds completed session results into the persisted
// streak, history, achievement and record state.
type ProgressService interface {
	RecordResult(ctx context.Context, res models.SessionResult, snippetID string) (*ProgressUpdate, error)
	Overview(ctx context.Context) (*ProgressOverview, error)
	SetSoundEnabled(ctx context.Context, enabled bool) error
	SavePlayerName(ctx context.Context, name string) error
}

type progressService struct {
	prefs repository.PrefsRepository
	now   func() time.Time
}

// NewProgressService creates a new ProgressService
func NewProgressService(prefs repository.PrefsRepository) ProgressService {
	return &progressService{prefs: prefs, now: time.Now}
}

// NewProgressServiceWithClock creates a ProgressService with a fixed
// time source, for tests.
func NewProgressServiceWithClock(prefs repository.PrefsRepository, now func() time.Time) ProgressService {
	return &progressService{prefs: prefs, now: now}
}

func (s *progressService) RecordResult(ctx context.Context, res models.SessionResult, snippetID string) (*ProgressUpdate, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording result: wpm=%d, accuracy=%d, mode=%s, chars=%d", res.WPM, res.Accuracy, res.Mode, res.CharCount)

	if res.Accuracy < 0 || res.Accuracy > 100 {
		return nil, errors.NewValidationError("accuracy", "must be between 0 and 100")
	}
	if res.CharCount <= 0 {
		return nil, errors.NewValidationError("char_count", "must be positive")
	}
	if res.Mode == "" {
		res.Mode = models.ModePractice
	}
	now := s.now()

	before := loadPref(ctx, s.prefs, prefStreak, models.StreakState{})
	streak := tracker.UpdateStreak(before, now)
	if streak != before {
		if err := savePref(ctx, s.prefs, prefStreak, streak); err != nil {
			return nil, errors.NewInternalError(err)
		}
	}

	history := tracker.AppendHistory(loadPref(ctx, s.prefs, prefWpmHistory, []models.WpmEntry(nil)), models.WpmEntry{
		WPM:      res.WPM,
		Accuracy: res.Accuracy,
		Date:     now.Format(time.RFC3339),
		Mode:     res.Mode,
	})
	if err := savePref(ctx, s.prefs, prefWpmHistory, history); err != nil {
		return nil, errors.NewInternalError(err)
	}

	stats := tracker.ApplyResult(loadPref(ctx, s.prefs, prefAchieveStats, models.AchievementStats{}), res, streak)
	if err := savePref(ctx, s.prefs, prefAchieveStats, stats); err != nil {
		return nil, errors.NewInternalError(err)
	}

	unlockedIDs := loadPref(ctx, s.prefs, prefUnlocked, []string(nil))
	fresh := tracker.NewlyUnlocked(stats, unlockedIDs)
	if len(fresh) > 0 {
		for _, a := range fresh {
			unlockedIDs = append(unlockedIDs, a.ID)
		}
		if err := savePref(ctx, s.prefs, prefUnlocked, unlockedIDs); err != nil {
			return nil, errors.NewInternalError(err)
		}
		log.Info("achievements unlocked: %d new (first: %s)", len(fresh), fresh[0].ID)
	}

	update := &ProgressUpdate{
		Result:         res,
		Streak:         streak,
		StreakAdvanced: streak.CurrentStreak > before.CurrentStreak,
		Stats:          stats,
		Unlocked:       fresh,
		CanSubmit:      tracker.CanSubmit(res),
	}
	if len(fresh) > 0 {
		update.Toast = &fresh[0]
	}

	// Timed windows never move the single-snippet records.
	if res.Mode == models.ModePractice || res.Mode == models.ModeDaily {
		current := loadPref(ctx, s.prefs, prefHighScore, (*models.HighScore)(nil))
		if improved := tracker.ImproveHighScore(current, res, now); improved != nil {
			if err := savePref(ctx, s.prefs, prefHighScore, improved); err != nil {
				return nil, errors.NewInternalError(err)
			}
			update.HighScore = improved
			update.NewHighScore = true
			log.Info("new high score: wpm=%d", improved.WPM)
		} else {
			update.HighScore = current
		}
	}

	if res.Mode == models.ModeDaily {
		current := loadPref(ctx, s.prefs, prefDailyBest, (*models.DailyBest)(nil))
		if improved := tracker.ImproveDailyBest(current, res, snippetID, now); improved != nil {
			if err := savePref(ctx, s.prefs, prefDailyBest, improved); err != nil {
				return nil, errors.NewInternalError(err)
			}
			update.DailyBest = improved
			update.NewDailyBest = true
		} else {
			update.DailyBest = current
		}
	}

	return update, nil
}

func (s *progressService) Overview(ctx context.Context) (*ProgressOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading progress overview")

	return &ProgressOverview{
		Streak:       loadPref(ctx, s.prefs, prefStreak, models.StreakState{}),
		History:      loadPref(ctx, s.prefs, prefWpmHistory, []models.WpmEntry(nil)),
		Stats:        loadPref(ctx, s.prefs, prefAchieveStats, models.AchievementStats{}),
		UnlockedIDs:  loadPref(ctx, s.prefs, prefUnlocked, []string(nil)),
		Achievements: tracker.Catalog(),
		HighScore:    loadPref(ctx, s.prefs, prefHighScore, (*models.HighScore)(nil)),
		SoundEnabled: loadPref(ctx, s.prefs, prefSound, false),
		PlayerName:   loadPref(ctx, s.prefs, prefPlayerName, ""),
	}, nil
}

func (s *progressService) SetSoundEnabled(ctx context.Context, enabled bool) error {
	if err := savePref(ctx, s.prefs, prefSound, enabled); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *progressService) SavePlayerName(ctx context.Context, name string) error {
	if err := savePref(ctx, s.prefs, prefPlayerName, name); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
