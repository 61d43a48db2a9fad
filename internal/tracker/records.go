package tracker

import (
	"time"

	"github.com/dgz9/codetype/internal/models"
)

// SubmitAccuracyFloor is the minimum accuracy for a result to count as
// a record or be offered for leaderboard submission. It matches the
// server-side acceptance gate.
const SubmitAccuracyFloor = 80

// ImproveHighScore returns the new high score if the result beats the
// current one, or nil. Only results at or above the accuracy floor
// qualify, and the WPM must strictly improve.
func ImproveHighScore(current *models.HighScore, res models.SessionResult, now time.Time) *models.HighScore {
	if res.Accuracy < SubmitAccuracyFloor {
		return nil
	}
	best := 0
	if current != nil {
		best = current.WPM
	}
	if res.WPM <= best {
		return nil
	}
	return &models.HighScore{
		WPM:      res.WPM,
		Accuracy: res.Accuracy,
		Language: res.Language,
		Date:     now.Format(time.RFC3339),
	}
}

// ImproveDailyBest returns the new daily best if the result beats the
// current one, or nil. A result improves when its WPM is strictly
// higher, or ties the WPM with strictly higher accuracy. A best from a
// previous calendar date never counts as current.
func ImproveDailyBest(current *models.DailyBest, res models.SessionResult, snippetID string, today time.Time) *models.DailyBest {
	todayStr := today.Format(DateFormat)
	if current != nil && current.Date != todayStr {
		current = nil
	}
	better := current == nil ||
		res.WPM > current.WPM ||
		(res.WPM == current.WPM && res.Accuracy > current.Accuracy)
	if !better {
		return nil
	}
	return &models.DailyBest{
		Date:      todayStr,
		WPM:       res.WPM,
		Accuracy:  res.Accuracy,
		SnippetID: snippetID,
	}
}

// CanSubmit reports whether a result qualifies for leaderboard
// submission. Mirrors the server's acceptance floor so clients reject
// before the network call.
func CanSubmit(res models.SessionResult) bool {
	return res.Accuracy >= SubmitAccuracyFloor
}
