package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(timeoutMiddleware(15 * time.Second))

		r.Get("/leaderboard", s.handleLeaderboard)
		r.Post("/leaderboard", s.handleSubmitScore)

		r.Get("/snippets/random", s.handleRandomSnippet)
		r.Get("/snippets/daily", s.handleDailyChallenge)
		r.Get("/snippets/meta", s.handleSnippetMeta)
		r.Get("/snippets/custom", s.handleListCustomSnippets)
		r.Post("/snippets/custom", s.handleSaveCustomSnippet)
		r.Delete("/snippets/custom/{index}", s.handleDeleteCustomSnippet)

		r.Post("/results", s.handleRecordResult)
		r.Get("/progress", s.handleProgress)
		r.Post("/settings/sound", s.handleSetSound)
		r.Post("/settings/name", s.handleSetName)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	return r
}
