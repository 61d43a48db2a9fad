package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/tracker"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestUpdateStreak_FirstEverSession(t *testing.T) {
	s := tracker.UpdateStreak(models.StreakState{}, day(2025, 6, 10))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, "2025-06-10", s.LastPracticeDate)
}

func TestUpdateStreak_IdempotentWithinDay(t *testing.T) {
	s := tracker.UpdateStreak(models.StreakState{}, day(2025, 6, 10))
	again := tracker.UpdateStreak(s, day(2025, 6, 10).Add(5*time.Hour))

	assert.Equal(t, s, again, "later sessions on the same day change nothing")
}

func TestUpdateStreak_ConsecutiveDayAdvances(t *testing.T) {
	s := models.StreakState{CurrentStreak: 3, LongestStreak: 5, LastPracticeDate: "2025-06-09"}
	s = tracker.UpdateStreak(s, day(2025, 6, 10))

	assert.Equal(t, 4, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
}

func TestUpdateStreak_GapResetsToOne(t *testing.T) {
	s := models.StreakState{CurrentStreak: 7, LongestStreak: 7, LastPracticeDate: "2025-06-01"}
	s = tracker.UpdateStreak(s, day(2025, 6, 10))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 7, s.LongestStreak, "longest streak survives the reset")
}

func TestUpdateStreak_LongestTracksCurrent(t *testing.T) {
	s := models.StreakState{CurrentStreak: 5, LongestStreak: 5, LastPracticeDate: "2025-06-09"}
	s = tracker.UpdateStreak(s, day(2025, 6, 10))

	assert.Equal(t, 6, s.CurrentStreak)
	assert.Equal(t, 6, s.LongestStreak)
}

func TestUpdateStreak_AcrossMonthBoundary(t *testing.T) {
	s := models.StreakState{CurrentStreak: 2, LongestStreak: 2, LastPracticeDate: "2025-05-31"}
	s = tracker.UpdateStreak(s, day(2025, 6, 1))

	assert.Equal(t, 3, s.CurrentStreak)
}

func TestAppendHistory_KeepsNewestTwenty(t *testing.T) {
	var history []models.WpmEntry
	for i := 0; i < 25; i++ {
		history = tracker.AppendHistory(history, models.WpmEntry{WPM: i})
	}

	assert.Len(t, history, tracker.HistorySize)
	assert.Equal(t, 5, history[0].WPM, "oldest entries evicted first")
	assert.Equal(t, 24, history[len(history)-1].WPM)
}

func TestAppendHistory_DoesNotMutateInput(t *testing.T) {
	history := []models.WpmEntry{{WPM: 1}}
	out := tracker.AppendHistory(history, models.WpmEntry{WPM: 2})

	assert.Len(t, history, 1)
	assert.Len(t, out, 2)
}
