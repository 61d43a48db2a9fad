package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dgz9/codetype/internal/catalog"
	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/models"
)

func (s *Server) handleRandomSnippet(w http.ResponseWriter, r *http.Request) {
	language := models.Language(r.URL.Query().Get("language"))
	difficulty := models.Difficulty(r.URL.Query().Get("difficulty"))

	snippet := s.Snippets.Random(r.Context(), language, difficulty)
	respondJSON(w, r, http.StatusOK, map[string]any{"snippet": snippet})
}

func (s *Server) handleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	daily, err := s.Snippets.Daily(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, daily)
}

// handleSnippetMeta lists the selectable languages and difficulties so
// clients never hardcode the catalog dimensions.
func (s *Server) handleSnippetMeta(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"languages":    catalog.Languages(),
		"difficulties": catalog.Difficulties(),
	})
}

func (s *Server) handleListCustomSnippets(w http.ResponseWriter, r *http.Request) {
	saved, err := s.Snippets.ListCustom(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if saved == nil {
		saved = []models.CustomSnippet{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"snippets": saved})
}

func (s *Server) handleSaveCustomSnippet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	saved, err := s.Snippets.SaveCustom(r.Context(), req.Code, req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{"snippets": saved})
}

func (s *Server) handleDeleteCustomSnippet(w http.ResponseWriter, r *http.Request) {
	idxStr := chi.URLParam(r, "index")
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid snippet index"))
		return
	}

	saved, err := s.Snippets.DeleteCustom(r.Context(), idx)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if saved == nil {
		saved = []models.CustomSnippet{}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"snippets": saved})
}
