package tracker

import "github.com/dgz9/codetype/internal/models"

// HistorySize bounds the WPM history ring.
const HistorySize = 20

// AppendHistory appends an entry and evicts the oldest entries beyond
// the fixed capacity, preserving order among survivors.
func AppendHistory(history []models.WpmEntry, entry models.WpmEntry) []models.WpmEntry {
	out := append(append([]models.WpmEntry{}, history...), entry)
	if len(out) > HistorySize {
		out = out[len(out)-HistorySize:]
	}
	return out
}
