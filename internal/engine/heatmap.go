package engine

import (
	"sync"
	"unicode"

	"github.com/dgz9/codetype/internal/models"
)

// KeyGrade buckets a key's accuracy for heatmap display.
type KeyGrade string

const (
	GradeNeutral KeyGrade = "neutral"
	GradePerfect KeyGrade = "perfect"
	GradeGood    KeyGrade = "good"
	GradeOkay    KeyGrade = "okay"
	GradePoor    KeyGrade = "poor"
)

// Heatmap tallies per-key correctness across every snippet typed while
// the application runs. It is a separate read-model: nothing here ever
// feeds WPM or accuracy, and backspacing never removes a tally.
type Heatmap struct {
	mu   sync.Mutex
	keys map[string]models.KeyStats
}

func NewHeatmap() *Heatmap {
	return &Heatmap{keys: make(map[string]models.KeyStats)}
}

// Record classifies a pressed key against the expected rune at the
// current position. Keys are folded to lower case so shifted and
// unshifted presses share a tally.
func (h *Heatmap) Record(pressed, expected rune) {
	key := string(unicode.ToLower(pressed))
	h.mu.Lock()
	defer h.mu.Unlock()
	stats := h.keys[key]
	if pressed == expected {
		stats.Correct++
	} else {
		stats.Incorrect++
	}
	h.keys[key] = stats
}

// Snapshot copies the current tallies.
func (h *Heatmap) Snapshot() map[string]models.KeyStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]models.KeyStats, len(h.keys))
	for k, v := range h.keys {
		out[k] = v
	}
	return out
}

// Grade buckets a key's accuracy ratio for display.
func Grade(stats models.KeyStats) KeyGrade {
	total := stats.Correct + stats.Incorrect
	if total == 0 {
		return GradeNeutral
	}
	ratio := float64(stats.Correct) / float64(total)
	switch {
	case ratio >= 0.95:
		return GradePerfect
	case ratio >= 0.8:
		return GradeGood
	case ratio >= 0.6:
		return GradeOkay
	default:
		return GradePoor
	}
}
