// Package handlers exposes the flashcard API over HTTP: generation from
// notes, review sessions driven by transition events, and the persisted
// set collection.
package handlers

import (
	"net/http"

	"github.com/cardforge/cardforge-api/generation"
	"github.com/cardforge/cardforge-api/store"
	"go.uber.org/zap"
)

// API bundles the collaborators the handlers need.
type API struct {
	Store     *store.SetStore
	Generator generation.Client
	Log       *zap.Logger

	sessions *sessionRegistry
}

// NewAPI wires an API around the given store and generator.
func NewAPI(s *store.SetStore, g generation.Client, log *zap.Logger) *API {
	return &API{
		Store:     s,
		Generator: g,
		Log:       log,
		sessions:  newSessionRegistry(),
	}
}

// Routes returns the API route table.
func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Generation
	mux.HandleFunc("POST /api/generate", a.Generate)
	mux.HandleFunc("POST /api/extract", a.ExtractText)

	// Sets
	mux.HandleFunc("GET /api/sets", a.ListSets)
	mux.HandleFunc("POST /api/sets", a.SaveSet)
	mux.HandleFunc("GET /api/sets/{name}", a.GetSet)
	mux.HandleFunc("DELETE /api/sets/{name}", a.DeleteSet)

	// Review sessions
	mux.HandleFunc("POST /api/sessions", a.CreateSession)
	mux.HandleFunc("GET /api/sessions/{sessionID}", a.GetSession)
	mux.HandleFunc("DELETE /api/sessions/{sessionID}", a.DiscardSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/events", a.SessionEvent)
	mux.HandleFunc("POST /api/sessions/{sessionID}/save", a.SaveSession)

	return mux
}
