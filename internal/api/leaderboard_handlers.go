package api

import (
	"net/http"
	"strconv"

	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
)

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	mode := r.URL.Query().Get("mode")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid limit parameter: %s", raw)
		} else {
			limit = n
		}
	}

	entries, err := s.Leaderboard.Top(r.Context(), mode, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"scores": entries})
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var sub models.ScoreSubmission
	if err := decodeJSON(r, &sub); err != nil {
		handleError(w, r, err)
		return
	}

	entry, err := s.Leaderboard.Submit(r.Context(), sub)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"score": entry})
}
