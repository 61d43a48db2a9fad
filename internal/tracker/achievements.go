package tracker

import "github.com/dgz9/codetype/internal/models"

// Achievement is one unlockable milestone. Conditions are threshold
// predicates over cumulative stats, so an unlocked achievement can
// never become locked again.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Condition   func(models.AchievementStats) bool `json:"-"`
}

var achievements = []Achievement{
	{ID: "first-steps", Name: "First Steps", Emoji: "👶", Description: "Complete your first typing session",
		Condition: func(s models.AchievementStats) bool { return s.TotalSessions >= 1 }},
	{ID: "getting-started", Name: "Getting Started", Emoji: "🚀", Description: "Complete 5 typing sessions",
		Condition: func(s models.AchievementStats) bool { return s.TotalSessions >= 5 }},
	{ID: "dedicated", Name: "Dedicated Typist", Emoji: "💪", Description: "Complete 25 typing sessions",
		Condition: func(s models.AchievementStats) bool { return s.TotalSessions >= 25 }},
	{ID: "centurion", Name: "Centurion", Emoji: "🏛️", Description: "Complete 100 typing sessions",
		Condition: func(s models.AchievementStats) bool { return s.TotalSessions >= 100 }},
	{ID: "speed-50", Name: "Warming Up", Emoji: "🔥", Description: "Reach 50 WPM",
		Condition: func(s models.AchievementStats) bool { return s.BestWPM >= 50 }},
	{ID: "speed-75", Name: "Getting Fast", Emoji: "⚡", Description: "Reach 75 WPM",
		Condition: func(s models.AchievementStats) bool { return s.BestWPM >= 75 }},
	{ID: "speed-100", Name: "Speed Demon", Emoji: "👹", Description: "Reach 100 WPM",
		Condition: func(s models.AchievementStats) bool { return s.BestWPM >= 100 }},
	{ID: "speed-150", Name: "Lightning Fingers", Emoji: "🌩️", Description: "Reach 150 WPM",
		Condition: func(s models.AchievementStats) bool { return s.BestWPM >= 150 }},
	{ID: "perfectionist", Name: "Perfectionist", Emoji: "✨", Description: "Get 100% accuracy in a session",
		Condition: func(s models.AchievementStats) bool { return s.PerfectSessions >= 1 }},
	{ID: "flawless-5", Name: "Flawless Five", Emoji: "💎", Description: "Get 100% accuracy 5 times",
		Condition: func(s models.AchievementStats) bool { return s.PerfectSessions >= 5 }},
	{ID: "streak-3", Name: "On a Roll", Emoji: "🎯", Description: "3 day practice streak",
		Condition: func(s models.AchievementStats) bool { return s.LongestStreak >= 3 }},
	{ID: "streak-7", Name: "Weekly Warrior", Emoji: "🗓️", Description: "7 day practice streak",
		Condition: func(s models.AchievementStats) bool { return s.LongestStreak >= 7 }},
	{ID: "streak-30", Name: "Monthly Master", Emoji: "📅", Description: "30 day practice streak",
		Condition: func(s models.AchievementStats) bool { return s.LongestStreak >= 30 }},
	{ID: "marathon", Name: "Marathon Typist", Emoji: "🏃", Description: "Type 10,000 characters total",
		Condition: func(s models.AchievementStats) bool { return s.TotalCharsTyped >= 10000 }},
	{ID: "novelist", Name: "Novelist", Emoji: "📚", Description: "Type 50,000 characters total",
		Condition: func(s models.AchievementStats) bool { return s.TotalCharsTyped >= 50000 }},
}

// Catalog returns the fixed achievement list in display order.
func Catalog() []Achievement {
	return achievements
}

// ApplyResult folds one completed result into the cumulative stats.
// Called exactly once per emitted result. Counters never decrease;
// CurrentStreak mirrors the streak state computed for the same result.
func ApplyResult(stats models.AchievementStats, res models.SessionResult, streak models.StreakState) models.AchievementStats {
	updated := models.AchievementStats{
		TotalSessions:      stats.TotalSessions + 1,
		BestWPM:            max(stats.BestWPM, res.WPM),
		BestAccuracy:       max(stats.BestAccuracy, res.Accuracy),
		CurrentStreak:      streak.CurrentStreak,
		LongestStreak:      max(stats.LongestStreak, streak.LongestStreak),
		PerfectSessions:    stats.PerfectSessions,
		SpeedDemonSessions: stats.SpeedDemonSessions,
		TotalCharsTyped:    stats.TotalCharsTyped + res.CharCount,
	}
	if res.Accuracy == 100 {
		updated.PerfectSessions++
	}
	if res.WPM >= 100 {
		updated.SpeedDemonSessions++
	}
	return updated
}

// NewlyUnlocked returns achievements whose conditions are now met and
// that are not yet in the unlocked set, in catalog order. The first of
// the batch is the one surfaced as a toast; the rest unlock silently.
func NewlyUnlocked(stats models.AchievementStats, unlocked []string) []Achievement {
	seen := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		seen[id] = true
	}
	var fresh []Achievement
	for _, a := range achievements {
		if !seen[a.ID] && a.Condition(stats) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}
