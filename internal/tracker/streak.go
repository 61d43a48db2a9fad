// Package tracker holds the pure functions that fold completed session
// results into streaks, history and achievement state.
package tracker

import (
	"time"

	"github.com/dgz9/codetype/internal/models"
)

// DateFormat is the calendar-date form used for streak bookkeeping.
const DateFormat = "2006-01-02"

// UpdateStreak folds one practice day into the streak state. It is
// idempotent per calendar day: the first session of a day advances or
// resets the streak, later sessions change nothing. Continuing requires
// the previous practice date to be exactly yesterday; any gap resets
// the current streak to 1.
func UpdateStreak(s models.StreakState, today time.Time) models.StreakState {
	todayStr := today.Format(DateFormat)
	if s.LastPracticeDate == todayStr {
		return s
	}

	yesterdayStr := today.AddDate(0, 0, -1).Format(DateFormat)
	streak := 1
	if s.LastPracticeDate == yesterdayStr {
		streak = s.CurrentStreak + 1
	}

	longest := s.LongestStreak
	if streak > longest {
		longest = streak
	}
	return models.StreakState{
		CurrentStreak:    streak,
		LongestStreak:    longest,
		LastPracticeDate: todayStr,
	}
}
