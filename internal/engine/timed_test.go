package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgz9/codetype/internal/engine"
)

func TestTimedWindow_StartValidatesDuration(t *testing.T) {
	for _, d := range []int{30, 60, 120} {
		w := engine.NewTimedWindow()
		require.NoError(t, w.Start(d))
		assert.Equal(t, engine.WindowRunning, w.State())
		assert.Equal(t, d, w.Remaining())
	}

	for _, d := range []int{0, -1, 45, 90, 300} {
		w := engine.NewTimedWindow()
		err := w.Start(d)
		require.Error(t, err, "duration %d should be rejected", d)
		assert.Equal(t, engine.WindowIdle, w.State())
	}
}

func TestTimedWindow_TickCountsDownToEnded(t *testing.T) {
	w := engine.NewTimedWindow()
	require.NoError(t, w.Start(30))

	for i := 0; i < 29; i++ {
		assert.False(t, w.Tick())
	}
	assert.Equal(t, 1, w.Remaining())
	assert.True(t, w.Tick(), "the 30th tick ends the window")
	assert.Equal(t, engine.WindowEnded, w.State())
	assert.Equal(t, 0, w.Remaining())

	assert.False(t, w.Tick(), "ticks after the end are ignored")
	assert.Equal(t, 0, w.Remaining())
}

func TestTimedWindow_TickOutsideRunningIsIgnored(t *testing.T) {
	w := engine.NewTimedWindow()
	assert.False(t, w.Tick())
	assert.Equal(t, engine.WindowIdle, w.State())
}

func TestTimedWindow_FinalizeAggregates(t *testing.T) {
	w := engine.NewTimedWindow()
	require.NoError(t, w.Start(60))

	w.Fold(300, 280)
	w.Fold(200, 170)

	for !w.Tick() {
	}

	res := w.Finalize()
	// 500 chars = 100 words over one minute.
	assert.Equal(t, 100, res.WPM)
	assert.Equal(t, 90, res.Accuracy)
	assert.Equal(t, 500, res.CharCount)
	assert.Equal(t, "60s", res.Mode)
	assert.Equal(t, 2, w.Stats().SnippetsCompleted)
}

func TestTimedWindow_FinalizeWithNothingCompleted(t *testing.T) {
	w := engine.NewTimedWindow()
	require.NoError(t, w.Start(30))
	for !w.Tick() {
	}

	res := w.Finalize()
	assert.Equal(t, 0, res.WPM)
	assert.Equal(t, 0, res.Accuracy)
	assert.Equal(t, 0, res.CharCount)
	assert.Equal(t, "30s", res.Mode)
}

func TestTimedWindow_FoldIgnoredOutsideRunning(t *testing.T) {
	w := engine.NewTimedWindow()
	w.Fold(100, 100)
	assert.Equal(t, 0, w.Stats().TotalChars)

	require.NoError(t, w.Start(30))
	for !w.Tick() {
	}
	w.Fold(100, 100)
	assert.Equal(t, 0, w.Stats().TotalChars, "folds after expiry are discarded")
}

func TestTimedWindow_CancelDiscardsTotals(t *testing.T) {
	w := engine.NewTimedWindow()
	require.NoError(t, w.Start(60))
	w.Fold(250, 240)

	w.Cancel()
	assert.Equal(t, engine.WindowIdle, w.State())
	assert.Equal(t, 0, w.Stats().TotalChars)
	assert.Equal(t, 0, w.Remaining())
}

func TestTimedWindow_Restart(t *testing.T) {
	w := engine.NewTimedWindow()
	require.NoError(t, w.Start(30))
	w.Fold(100, 90)
	for !w.Tick() {
	}

	require.NoError(t, w.Start(120))
	assert.Equal(t, engine.WindowRunning, w.State())
	assert.Equal(t, 120, w.Remaining())
	assert.Equal(t, 0, w.Stats().TotalChars, "restart clears previous totals")
}
