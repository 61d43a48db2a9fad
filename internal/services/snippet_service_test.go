package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgz9/codetype/internal/catalog"
	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/repository/memory"
	"github.com/dgz9/codetype/internal/services"
)

func newSnippetService(now time.Time) (services.SnippetService, *memory.PrefsStore) {
	prefs := memory.NewPrefsStore()
	svc := services.NewSnippetServiceWithClock(prefs, func() time.Time { return now })
	return svc, prefs
}

func TestRandom_HonorsFilter(t *testing.T) {
	svc, _ := newSnippetService(time.Now())
	for i := 0; i < 20; i++ {
		s := svc.Random(context.Background(), models.LangRust, "")
		assert.Equal(t, models.LangRust, s.Language)
	}
}

func TestDaily_ReturnsDeterministicSnippetAndDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	svc, _ := newSnippetService(now)

	daily, err := svc.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Daily(now).ID, daily.Snippet.ID)
	assert.Equal(t, "Tuesday, Jun 10", daily.Date)
	assert.Nil(t, daily.Best)
}

func TestDaily_StaleBestIsDropped(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	svc, prefs := newSnippetService(now)
	ctx := context.Background()

	require.NoError(t, prefs.Set(ctx, "codetype-daily-best",
		[]byte(`{"date":"2025-06-09","wpm":80,"accuracy":95,"snippetId":"go-1"}`)))

	daily, err := svc.Daily(ctx)
	require.NoError(t, err)
	assert.Nil(t, daily.Best, "yesterday's best is not today's")
}

func TestDaily_TodaysBestIsReturned(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	svc, prefs := newSnippetService(now)
	ctx := context.Background()

	require.NoError(t, prefs.Set(ctx, "codetype-daily-best",
		[]byte(`{"date":"2025-06-10","wpm":80,"accuracy":95,"snippetId":"go-1"}`)))

	daily, err := svc.Daily(ctx)
	require.NoError(t, err)
	require.NotNil(t, daily.Best)
	assert.Equal(t, 80, daily.Best.WPM)
}

func TestSaveCustom_AppendsAndValidates(t *testing.T) {
	svc, _ := newSnippetService(time.Now())
	ctx := context.Background()

	saved, err := svc.SaveCustom(ctx, "print('hi')\n", "Mine")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Mine", saved[0].Name)
	assert.Equal(t, "print('hi')", saved[0].Code)
	assert.NotEmpty(t, saved[0].ID)

	_, err = svc.SaveCustom(ctx, "   \n\t", "empty")
	assert.Error(t, err)
}

func TestSaveCustom_DefaultName(t *testing.T) {
	svc, _ := newSnippetService(time.Now())

	saved, err := svc.SaveCustom(context.Background(), "x = 1", "  ")
	require.NoError(t, err)
	assert.Equal(t, "Custom Snippet", saved[0].Name)
}

func TestSaveCustom_CapEvictsOldest(t *testing.T) {
	svc, _ := newSnippetService(time.Now())
	ctx := context.Background()

	var saved []models.CustomSnippet
	var err error
	for i := 0; i < services.MaxCustomSnippets+2; i++ {
		saved, err = svc.SaveCustom(ctx, fmt.Sprintf("code %d", i), fmt.Sprintf("snippet %d", i))
		require.NoError(t, err)
	}

	require.Len(t, saved, services.MaxCustomSnippets)
	assert.Equal(t, "snippet 2", saved[0].Name, "oldest entries evicted first")
	assert.Equal(t, fmt.Sprintf("snippet %d", services.MaxCustomSnippets+1), saved[len(saved)-1].Name)
}

func TestDeleteCustom(t *testing.T) {
	svc, _ := newSnippetService(time.Now())
	ctx := context.Background()

	_, err := svc.SaveCustom(ctx, "a", "first")
	require.NoError(t, err)
	_, err = svc.SaveCustom(ctx, "b", "second")
	require.NoError(t, err)

	saved, err := svc.DeleteCustom(ctx, 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "second", saved[0].Name)

	_, err = svc.DeleteCustom(ctx, 5)
	assert.Error(t, err)
	_, err = svc.DeleteCustom(ctx, -1)
	assert.Error(t, err)
}

func TestListCustom_EmptyByDefault(t *testing.T) {
	svc, _ := newSnippetService(time.Now())

	saved, err := svc.ListCustom(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saved)
}
