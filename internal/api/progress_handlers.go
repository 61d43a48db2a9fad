package api

import (
	"net/http"
	"strings"

	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/models"
)

func (s *Server) handleRecordResult(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WPM       int    `json:"wpm"`
		Accuracy  int    `json:"accuracy"`
		CharCount int    `json:"char_count"`
		Mode      string `json:"mode"`
		Language  string `json:"language"`
		SnippetID string `json:"snippet_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	update, err := s.Progress.RecordResult(r.Context(), models.SessionResult{
		WPM:       req.WPM,
		Accuracy:  req.Accuracy,
		CharCount: req.CharCount,
		Mode:      req.Mode,
		Language:  models.Language(req.Language),
	}, req.SnippetID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, update)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	overview, err := s.Progress.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleSetSound(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Progress.SetSoundEnabled(r.Context(), req.Enabled); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"sound_enabled": req.Enabled})
}

func (s *Server) handleSetName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) > 20 {
		handleError(w, r, errors.NewValidationError("name", "must be at most 20 characters"))
		return
	}

	if err := s.Progress.SavePlayerName(r.Context(), name); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"name": name})
}
