package models

// StreakState tracks consecutive practice days. Dates are calendar
// dates in "2006-01-02" form, not timestamps.
type StreakState struct {
	CurrentStreak    int    `json:"currentStreak"`
	LongestStreak    int    `json:"longestStreak"`
	LastPracticeDate string `json:"lastPracticeDate"`
}

// WpmEntry is one row of the bounded WPM history.
type WpmEntry struct {
	WPM      int    `json:"wpm"`
	Accuracy int    `json:"accuracy"`
	Date     string `json:"date"` // RFC 3339
	Mode     string `json:"mode"`
}

// AchievementStats holds the cumulative counters achievements are
// evaluated against. All fields are monotonic except CurrentStreak,
// which mirrors StreakState.
type AchievementStats struct {
	TotalSessions      int `json:"totalSessions"`
	BestWPM            int `json:"bestWpm"`
	BestAccuracy       int `json:"bestAccuracy"`
	CurrentStreak      int `json:"currentStreak"`
	LongestStreak      int `json:"longestStreak"`
	PerfectSessions    int `json:"perfectSessions"`    // accuracy == 100
	SpeedDemonSessions int `json:"speedDemonSessions"` // wpm >= 100
	TotalCharsTyped    int `json:"totalCharsTyped"`
}

// HighScore is the local best practice result. Only results with at
// least 80% accuracy qualify.
type HighScore struct {
	WPM      int      `json:"wpm"`
	Accuracy int      `json:"accuracy"`
	Language Language `json:"language"`
	Date     string   `json:"date"`
}

// DailyBest is the best daily-challenge result for one calendar date.
// An entry from a previous date is treated as absent.
type DailyBest struct {
	Date      string `json:"date"` // "2006-01-02"
	WPM       int    `json:"wpm"`
	Accuracy  int    `json:"accuracy"`
	SnippetID string `json:"snippetId"`
}
