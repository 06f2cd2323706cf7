package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardforge/cardforge-api/generation"
	"github.com/cardforge/cardforge-api/store"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondError maps a component failure to an HTTP status. Input errors
// are the user's to fix; provider and store failures are retryable; the
// rest is logged and surfaced as a generic message.
func (a *API) respondError(w http.ResponseWriter, err error) {
	var malformed *generation.MalformedError
	var httpErr *generation.HTTPError

	switch {
	case errors.Is(err, generation.ErrNoInput):
		writeError(w, http.StatusBadRequest, "No notes provided")
	case errors.Is(err, store.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "Set name must not be empty")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Flashcard set not found")
	case errors.Is(err, generation.ErrRefused),
		errors.Is(err, generation.ErrEmptyResponse),
		errors.As(err, &malformed),
		errors.As(err, &httpErr):
		a.Log.Warn("generation failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "Error generating flashcards")
	default:
		a.Log.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
