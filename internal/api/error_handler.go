package api

import (
	"net/http"

	"github.com/dgz9/codetype/internal/errors"
	"github.com/dgz9/codetype/internal/logger"
)

// handleError centralizes error handling for HTTP responses. Every
// endpoint speaks JSON, so the error body is always an envelope with
// a code and message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	respondJSON(w, r, appErr.Status, map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
