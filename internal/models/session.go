package models

// CharState classifies one position of the target code against the
// typed buffer. Derived on demand, never stored.
type CharState string

const (
	CharCorrect   CharState = "correct"
	CharIncorrect CharState = "incorrect"
	CharCurrent   CharState = "current"
	CharPending   CharState = "pending"
)

// Session modes. Timed modes use the "<seconds>s" form, e.g. "60s".
const (
	ModePractice = "practice"
	ModeDaily    = "daily"
)

// SessionResult is emitted exactly once per completed session or
// finalized timed window. Immutable.
type SessionResult struct {
	WPM       int      `json:"wpm"`
	Accuracy  int      `json:"accuracy"` // 0-100
	CharCount int      `json:"char_count"`
	Mode      string   `json:"mode"`
	Language  Language `json:"language,omitempty"`
}

// TimedStats accumulates totals across completed sub-snippets of a
// timed challenge window. Partial snippets never contribute.
type TimedStats struct {
	TotalChars        int `json:"total_chars"`
	CorrectChars      int `json:"correct_chars"`
	SnippetsCompleted int `json:"snippets_completed"`
}

// KeyStats tallies correct/incorrect presses of a single key for the
// keyboard heatmap. Observational only; never feeds WPM or accuracy.
type KeyStats struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}
