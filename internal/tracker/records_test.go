package tracker_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/tracker"
)

var recordDay = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func TestImproveHighScore_FirstQualifyingResult(t *testing.T) {
	res := models.SessionResult{WPM: 60, Accuracy: 92, Language: "go"}

	improved := tracker.ImproveHighScore(nil, res, recordDay)
	require.NotNil(t, improved)
	assert.Equal(t, 60, improved.WPM)
	assert.Equal(t, 92, improved.Accuracy)
	assert.Equal(t, models.Language("go"), improved.Language)
	assert.Equal(t, recordDay.Format(time.RFC3339), improved.Date)
}

func TestImproveHighScore_BelowAccuracyFloor(t *testing.T) {
	res := models.SessionResult{WPM: 200, Accuracy: 79}
	assert.Nil(t, tracker.ImproveHighScore(nil, res, recordDay))

	res.Accuracy = 80
	assert.NotNil(t, tracker.ImproveHighScore(nil, res, recordDay), "80 is the inclusive floor")
}

func TestImproveHighScore_RequiresStrictlyHigherWPM(t *testing.T) {
	current := &models.HighScore{WPM: 60, Accuracy: 90}

	assert.Nil(t, tracker.ImproveHighScore(current, models.SessionResult{WPM: 60, Accuracy: 100}, recordDay))
	assert.Nil(t, tracker.ImproveHighScore(current, models.SessionResult{WPM: 59, Accuracy: 100}, recordDay))

	improved := tracker.ImproveHighScore(current, models.SessionResult{WPM: 61, Accuracy: 85}, recordDay)
	require.NotNil(t, improved)
	assert.Equal(t, 61, improved.WPM)
}

func TestImproveDailyBest_FirstOfTheDay(t *testing.T) {
	res := models.SessionResult{WPM: 55, Accuracy: 88}

	improved := tracker.ImproveDailyBest(nil, res, "snippet-3", recordDay)
	require.NotNil(t, improved)
	assert.Equal(t, "2025-06-10", improved.Date)
	assert.Equal(t, "snippet-3", improved.SnippetID)
}

func TestImproveDailyBest_TieBreaksOnAccuracy(t *testing.T) {
	current := &models.DailyBest{Date: "2025-06-10", WPM: 55, Accuracy: 88}

	assert.Nil(t, tracker.ImproveDailyBest(current, models.SessionResult{WPM: 55, Accuracy: 88}, "s", recordDay))
	assert.Nil(t, tracker.ImproveDailyBest(current, models.SessionResult{WPM: 54, Accuracy: 100}, "s", recordDay))

	improved := tracker.ImproveDailyBest(current, models.SessionResult{WPM: 55, Accuracy: 90}, "s", recordDay)
	require.NotNil(t, improved)
	assert.Equal(t, 90, improved.Accuracy)
}

func TestImproveDailyBest_StaleDateIsIgnored(t *testing.T) {
	current := &models.DailyBest{Date: "2025-06-09", WPM: 120, Accuracy: 100}

	// Yesterday's monster score does not block a modest score today.
	improved := tracker.ImproveDailyBest(current, models.SessionResult{WPM: 40, Accuracy: 85}, "s", recordDay)
	require.NotNil(t, improved)
	assert.Equal(t, 40, improved.WPM)
	assert.Equal(t, "2025-06-10", improved.Date)
}

func TestCanSubmit(t *testing.T) {
	assert.False(t, tracker.CanSubmit(models.SessionResult{Accuracy: 79}))
	assert.True(t, tracker.CanSubmit(models.SessionResult{Accuracy: 80}))
	assert.True(t, tracker.CanSubmit(models.SessionResult{Accuracy: 100}))
}
