package models

import "time"

// LeaderboardEntry is one stored score row.
type LeaderboardEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	WPM       int       `json:"wpm"`
	Accuracy  int       `json:"accuracy"`
	Mode      string    `json:"mode"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreSubmission is a candidate leaderboard entry before validation.
type ScoreSubmission struct {
	Name     string `json:"name"`
	WPM      int    `json:"wpm"`
	Accuracy int    `json:"accuracy"`
	Mode     string `json:"mode"`
	Language string `json:"language,omitempty"`
}

// LeaderboardFilter narrows leaderboard listing.
type LeaderboardFilter struct {
	Mode  string
	Limit int
}
