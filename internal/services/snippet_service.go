package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dgz9/codetype/internal/catalog"
	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/repository"
	"github.com/dgz9/codetype/internal/tracker"
)

// MaxCustomSnippets caps the saved custom snippet list; the oldest
// entry is evicted first.
const MaxCustomSnippets = 10

// DailyChallenge bundles the deterministic snippet for today with its
// display date and the player's best so far.
type DailyChallenge struct {
	Snippet models.Snippet    `json:"snippet"`
	Date    string            `json:"date"`
	Best    *models.DailyBest `json:"best,omitempty"`
}

// SnippetService handles snippet selection and saved custom snippets
type SnippetService interface {
	Random(ctx context.Context, language models.Language, difficulty models.Difficulty) models.Snippet
	Daily(ctx context.Context) (*DailyChallenge, error)
	ListCustom(ctx context.Context) ([]models.CustomSnippet, error)
	SaveCustom(ctx context.Context, code, name string) ([]models.CustomSnippet, error)
	DeleteCustom(ctx context.Context, index int) ([]models.CustomSnippet, error)
}

type snippetService struct {
	prefs repository.PrefsRepository
	now   func() time.Time
}

// NewSnippetService creates a new SnippetService
func NewSnippetService(prefs repository.PrefsRepository) SnippetService {
	return &snippetService{prefs: prefs, now: time.Now}
}

// NewSnippetServiceWithClock creates a SnippetService with a fixed
// time source, for tests.
func NewSnippetServiceWithClock(prefs repository.PrefsRepository, now func() time.Time) SnippetService {
	return &snippetService{prefs: prefs, now: now}
}

func (s *snippetService) Random(ctx context.Context, language models.Language, difficulty models.Difficulty) models.Snippet {
	log := logger.FromContext(ctx)
	snippet := catalog.Random(language, difficulty)
	log.Debug("picked snippet: id=%s, language=%s, difficulty=%s", snippet.ID, snippet.Language, snippet.Difficulty)
	return snippet
}

func (s *snippetService) Daily(ctx context.Context) (*DailyChallenge, error) {
	log := logger.FromContext(ctx)
	now := s.now()
	snippet := catalog.Daily(now)
	log.Debug("daily challenge: id=%s, date=%s", snippet.ID, now.Format(tracker.DateFormat))

	// A best recorded on a previous date is stale and treated as absent.
	best := loadPref(ctx, s.prefs, prefDailyBest, (*models.DailyBest)(nil))
	if best != nil && best.Date != now.Format(tracker.DateFormat) {
		best = nil
	}

	return &DailyChallenge{
		Snippet: snippet,
		Date:    catalog.DailyDate(now),
		Best:    best,
	}, nil
}

func (s *snippetService) ListCustom(ctx context.Context) ([]models.CustomSnippet, error) {
	return loadPref(ctx, s.prefs, prefCustomSnippets, []models.CustomSnippet(nil)), nil
}

func (s *snippetService) SaveCustom(ctx context.Context, code, name string) ([]models.CustomSnippet, error) {
	log := logger.FromContext(ctx)

	code = strings.TrimRight(code, " \t\n")
	if strings.TrimSpace(code) == "" {
		return nil, errors.NewValidationError("code", "cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Custom Snippet"
	}

	saved := loadPref(ctx, s.prefs, prefCustomSnippets, []models.CustomSnippet(nil))
	saved = append(saved, models.CustomSnippet{
		ID:   "custom-" + uuid.NewString(),
		Name: name,
		Code: code,
	})
	if len(saved) > MaxCustomSnippets {
		saved = saved[len(saved)-MaxCustomSnippets:]
	}
	if err := savePref(ctx, s.prefs, prefCustomSnippets, saved); err != nil {
		return nil, errors.NewInternalError(err)
	}
	log.Info("custom snippet saved: name=%s (%d total)", name, len(saved))
	return saved, nil
}

func (s *snippetService) DeleteCustom(ctx context.Context, index int) ([]models.CustomSnippet, error) {
	saved := loadPref(ctx, s.prefs, prefCustomSnippets, []models.CustomSnippet(nil))
	if index < 0 || index >= len(saved) {
		return nil, errors.NewNotFoundError("custom snippet", index)
	}
	saved = append(saved[:index], saved[index+1:]...)
	if err := savePref(ctx, s.prefs, prefCustomSnippets, saved); err != nil {
		return nil, errors.NewInternalError(err)
	}
	return saved, nil
}
