package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgz9/codetype/internal/engine"
	"github.com/dgz9/codetype/internal/models"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func typeString(s *engine.Session, text string) *models.SessionResult {
	var res *models.SessionResult
	for _, r := range text {
		if out := s.OnKey(engine.Rune(r)); out != nil {
			res = out
		}
	}
	return res
}

func TestSession_CompletesWithResult(t *testing.T) {
	clock := newFakeClock()
	s := engine.NewSession(engine.WithClock(clock.Now))
	s.Start(models.Snippet{ID: "x", Code: "abc", Language: "go"}, models.ModePractice)

	assert.Nil(t, s.OnKey(engine.Rune('a')))
	assert.Nil(t, s.OnKey(engine.Rune('b')))

	res := s.OnKey(engine.Rune('c'))
	require.NotNil(t, res)
	assert.Equal(t, 100, res.Accuracy)
	assert.Equal(t, 3, res.CharCount)
	assert.Equal(t, models.ModePractice, res.Mode)
	assert.Equal(t, models.Language("go"), res.Language)
	assert.True(t, s.Completed())
}

func TestSession_ResultEmittedExactlyOnce(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "ab"}, models.ModePractice)

	require.NotNil(t, typeString(s, "ab"))
	assert.Nil(t, s.OnKey(engine.Rune('x')), "keys after completion are ignored")
	assert.Equal(t, 2, s.TypedLen(), "buffer frozen after completion")
}

func TestSession_WPMUsesElapsedTypingTime(t *testing.T) {
	clock := newFakeClock()
	s := engine.NewSession(engine.WithClock(clock.Now))
	code := strings.Repeat("abcd", 10) // 40 chars = 8 words
	s.Start(models.Snippet{Code: code}, models.ModePractice)

	// Idle time before the first key must not count.
	clock.Advance(10 * time.Second)

	var final *models.SessionResult
	for i, r := range code {
		if i == 1 {
			// All typing time elapses between first key and last key.
			clock.Advance(24 * time.Second)
		}
		if out := s.OnKey(engine.Rune(r)); out != nil {
			final = out
		}
	}

	// 8 words over 0.4 minutes is 20 WPM.
	require.NotNil(t, final)
	assert.Equal(t, 20, final.WPM)
}

func TestSession_TimerStartsOnFirstPrintableKey(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "a b"}, models.ModePractice)

	assert.False(t, s.Started())
	s.OnKey(engine.Backspace)
	assert.False(t, s.Started(), "backspace does not start the timer")
	s.OnKey(engine.Rune('a'))
	assert.True(t, s.Started())
}

func TestSession_BackspaceRemovesLastRune(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "abc"}, models.ModePractice)

	s.OnKey(engine.Rune('a'))
	s.OnKey(engine.Rune('x'))
	s.OnKey(engine.Backspace)
	assert.Equal(t, "a", s.Typed())

	res := typeString(s, "bc")
	require.NotNil(t, res)
	assert.Equal(t, 100, res.Accuracy, "corrected mistakes score as matches")
}

func TestSession_BackspaceOnEmptyBufferIsNoop(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "ab"}, models.ModePractice)

	s.OnKey(engine.Backspace)
	assert.Equal(t, 0, s.TypedLen())
}

func TestSession_TabExpandsToTwoSpaces(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "  x"}, models.ModePractice)

	s.OnKey(engine.Tab)
	assert.Equal(t, "  ", s.Typed())

	// One backspace removes a single space, not the whole expansion.
	s.OnKey(engine.Backspace)
	assert.Equal(t, " ", s.Typed())
}

func TestSession_EnterAppendsNewline(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "a\nb"}, models.ModePractice)

	s.OnKey(engine.Rune('a'))
	s.OnKey(engine.Enter)
	assert.Equal(t, "a\n", s.Typed())
}

func TestSession_CompletionOnlyOnPrintableKey(t *testing.T) {
	// Tab can fill the buffer to target length, but only a printable
	// key triggers the completion check.
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "a "}, models.ModePractice)

	s.OnKey(engine.Rune('a'))
	s.OnKey(engine.Tab)
	assert.False(t, s.Completed())
	assert.Equal(t, 3, s.TypedLen())
}

func TestSession_AccuracyCountsMatchingPositions(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "abcde"}, models.ModePractice)

	res := typeString(s, "abxde")
	require.NotNil(t, res)
	assert.Equal(t, 80, res.Accuracy)
	assert.Equal(t, 4, s.CorrectCount())
}

func TestSession_StateAt(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "abc"}, models.ModePractice)
	s.OnKey(engine.Rune('a'))
	s.OnKey(engine.Rune('x'))

	assert.Equal(t, models.CharCorrect, s.StateAt(0))
	assert.Equal(t, models.CharIncorrect, s.StateAt(1))
	assert.Equal(t, models.CharCurrent, s.StateAt(2))
}

func TestSession_Progress(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "abcd"}, models.ModePractice)

	assert.Equal(t, 0, s.Progress())
	s.OnKey(engine.Rune('a'))
	assert.Equal(t, 25, s.Progress())
}

func TestSession_StartResetsState(t *testing.T) {
	s := engine.NewSession()
	s.Start(models.Snippet{Code: "ab"}, models.ModePractice)
	require.NotNil(t, typeString(s, "ab"))

	s.Start(models.Snippet{Code: "xyz"}, models.ModeDaily)
	assert.False(t, s.Completed())
	assert.False(t, s.Started())
	assert.Equal(t, 0, s.TypedLen())
}

func TestSession_HeatmapObservesKeys(t *testing.T) {
	h := engine.NewHeatmap()
	s := engine.NewSession(engine.WithHeatmap(h))
	s.Start(models.Snippet{Code: "aA"}, models.ModePractice)

	s.OnKey(engine.Rune('a'))
	s.OnKey(engine.Rune('a')) // wrong, expected 'A'

	snap := h.Snapshot()
	require.Contains(t, snap, "a")
	assert.Equal(t, 1, snap["a"].Correct)
	assert.Equal(t, 1, snap["a"].Incorrect)
}
