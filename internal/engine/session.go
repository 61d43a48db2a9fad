// Package engine turns keystroke streams into typing progress, WPM and
// accuracy measurements, and timed-challenge aggregates.
package engine

import (
	"math"
	"time"

	"github.com/dgz9/codetype/internal/models"
)

// KeyKind distinguishes the keystroke classes the engine understands.
type KeyKind int

const (
	KeyRune KeyKind = iota
	KeyBackspace
	KeyTab
	KeyEnter
)

// Key is one keystroke event.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Rune wraps a printable character keystroke.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

var (
	Backspace = Key{Kind: KeyBackspace}
	Tab       = Key{Kind: KeyTab}
	Enter     = Key{Kind: KeyEnter}
)

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithHeatmap attaches a heatmap that observes every printable
// keystroke. Purely observational; scoring is unaffected.
func WithHeatmap(h *Heatmap) Option {
	return func(s *Session) {
		s.heatmap = h
	}
}

// Session consumes keystrokes against one snippet and derives live
// progress and, on completion, a final result. Not safe for concurrent
// use; callers deliver events one at a time.
type Session struct {
	snippet models.Snippet
	code    []rune
	typed   []rune
	mode    string

	startedAt time.Time // zero until the first printable key
	endedAt   time.Time // zero until completion

	now     func() time.Time
	heatmap *Heatmap
}

// NewSession creates an idle session. Call Start before sending keys.
func NewSession(opts ...Option) *Session {
	s := &Session{now: time.Now, mode: models.ModePractice}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start assigns a snippet and resets the buffer, timestamps and mode.
// The heatmap is deliberately not reset; its tallies span snippets.
func (s *Session) Start(snippet models.Snippet, mode string) {
	s.snippet = snippet
	s.code = []rune(snippet.Code)
	s.typed = s.typed[:0]
	s.mode = mode
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// OnKey applies one keystroke. It returns a non-nil result exactly
// once, when the buffer reaches the target length on a printable key.
// Keys arriving after completion are ignored.
func (s *Session) OnKey(k Key) *models.SessionResult {
	if s.Completed() {
		return nil
	}

	switch k.Kind {
	case KeyBackspace:
		if len(s.typed) > 0 {
			s.typed = s.typed[:len(s.typed)-1]
		}
		return nil
	case KeyTab:
		// Tab expands to two-space indentation as a single edit.
		s.typed = append(s.typed, ' ', ' ')
		return nil
	case KeyEnter:
		s.typed = append(s.typed, '\n')
		return nil
	}

	// Printable key. The timer starts on the first one; idle time
	// before typing never counts against WPM.
	if s.startedAt.IsZero() {
		s.startedAt = s.now()
	}

	if s.heatmap != nil {
		var expected rune = -1
		if len(s.typed) < len(s.code) {
			expected = s.code[len(s.typed)]
		}
		s.heatmap.Record(k.Rune, expected)
	}

	s.typed = append(s.typed, k.Rune)
	if len(s.typed) == len(s.code) {
		s.endedAt = s.now()
		res := s.result()
		return &res
	}
	return nil
}

func (s *Session) result() models.SessionResult {
	return models.SessionResult{
		WPM:       s.wpm(),
		Accuracy:  s.Accuracy(),
		CharCount: len(s.code),
		Mode:      s.mode,
		Language:  s.snippet.Language,
	}
}

func (s *Session) wpm() int {
	// An unset start should be unreachable once the first key fired;
	// define the degenerate case as 0 rather than an infinite rate.
	if s.startedAt.IsZero() || s.endedAt.IsZero() {
		return 0
	}
	minutes := s.endedAt.Sub(s.startedAt).Minutes()
	if minutes <= 0 {
		return 0
	}
	words := float64(len(s.code)) / 5.0
	return int(math.Round(words / minutes))
}

// Accuracy is the rounded percentage of positions where the typed
// buffer matches the target. An empty snippet counts as 100.
func (s *Session) Accuracy() int {
	if len(s.code) == 0 {
		return 100
	}
	return int(math.Round(float64(s.CorrectCount()) / float64(len(s.code)) * 100))
}

// CorrectCount counts positions where the buffer matches the target.
func (s *Session) CorrectCount() int {
	correct := 0
	for i, r := range s.typed {
		if i < len(s.code) && s.code[i] == r {
			correct++
		}
	}
	return correct
}

// StateAt classifies one target position against the typed buffer.
func (s *Session) StateAt(i int) models.CharState {
	if i >= len(s.typed) {
		if i == len(s.typed) {
			return models.CharCurrent
		}
		return models.CharPending
	}
	if i < len(s.code) && s.typed[i] == s.code[i] {
		return models.CharCorrect
	}
	return models.CharIncorrect
}

// Progress is the rounded completion percentage of the buffer.
func (s *Session) Progress() int {
	if len(s.code) == 0 {
		return 100
	}
	return int(math.Round(float64(len(s.typed)) / float64(len(s.code)) * 100))
}

// Completed reports whether the session has emitted its result.
func (s *Session) Completed() bool { return !s.endedAt.IsZero() }

// Started reports whether the first printable key has arrived.
func (s *Session) Started() bool { return !s.startedAt.IsZero() }

// Snippet returns the snippet currently assigned.
func (s *Session) Snippet() models.Snippet { return s.snippet }

// Typed returns the current buffer contents.
func (s *Session) Typed() string { return string(s.typed) }

// TypedLen returns the buffer length in runes.
func (s *Session) TypedLen() int { return len(s.typed) }
