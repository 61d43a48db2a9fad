package engine

import (
	"fmt"
	"math"

	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/models"
)

// WindowState is the timed-challenge lifecycle.
type WindowState int

const (
	WindowIdle WindowState = iota
	WindowRunning
	WindowEnded
)

func (s WindowState) String() string {
	switch s {
	case WindowIdle:
		return "idle"
	case WindowRunning:
		return "running"
	case WindowEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// TimedWindow aggregates completed sub-snippets over a fixed wall-clock
// duration and finalizes one composite result at expiry. Ticks arrive
// from an external one-second timer, never from keystrokes.
type TimedWindow struct {
	state     WindowState
	duration  int // seconds
	remaining int
	stats     models.TimedStats
}

// NewTimedWindow creates an idle window.
func NewTimedWindow() *TimedWindow {
	return &TimedWindow{state: WindowIdle}
}

// Start enters Running with one of the supported durations.
func (w *TimedWindow) Start(durationSeconds int) error {
	switch durationSeconds {
	case 30, 60, 120:
	default:
		return errors.NewValidationError("duration", "must be 30, 60 or 120 seconds")
	}
	w.state = WindowRunning
	w.duration = durationSeconds
	w.remaining = durationSeconds
	w.stats = models.TimedStats{}
	return nil
}

// Tick consumes one countdown second. It returns true on the tick that
// ends the window. Ticks outside Running are ignored.
func (w *TimedWindow) Tick() bool {
	if w.state != WindowRunning {
		return false
	}
	w.remaining--
	if w.remaining <= 0 {
		w.remaining = 0
		w.state = WindowEnded
		return true
	}
	return false
}

// Fold adds one fully completed sub-snippet to the running totals.
// Partial snippets must never be folded.
func (w *TimedWindow) Fold(charCount, correctCount int) {
	if w.state != WindowRunning {
		return
	}
	w.stats.TotalChars += charCount
	w.stats.CorrectChars += correctCount
	w.stats.SnippetsCompleted++
}

// Cancel abandons the window and discards its totals. No result is
// emitted for a cancelled window.
func (w *TimedWindow) Cancel() {
	w.state = WindowIdle
	w.remaining = 0
	w.stats = models.TimedStats{}
}

// Finalize computes the single aggregate result for an ended window.
// The rate uses the full window duration: time spent between snippets
// counts against the player.
func (w *TimedWindow) Finalize() models.SessionResult {
	res := models.SessionResult{
		CharCount: w.stats.TotalChars,
		Mode:      fmt.Sprintf("%ds", w.duration),
	}
	if w.stats.TotalChars == 0 {
		return res
	}
	words := float64(w.stats.TotalChars) / 5.0
	minutes := float64(w.duration) / 60.0
	res.WPM = int(math.Round(words / minutes))
	res.Accuracy = int(math.Round(float64(w.stats.CorrectChars) / float64(w.stats.TotalChars) * 100))
	return res
}

// Mode returns the result mode label for this window, e.g. "60s".
func (w *TimedWindow) Mode() string { return fmt.Sprintf("%ds", w.duration) }

// State returns the lifecycle state.
func (w *TimedWindow) State() WindowState { return w.state }

// Remaining returns the seconds left on the countdown.
func (w *TimedWindow) Remaining() int { return w.remaining }

// Stats returns the accumulated totals.
func (w *TimedWindow) Stats() models.TimedStats { return w.stats }
