package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cardforge/cardforge-api/models"
	"github.com/cardforge/cardforge-api/review"
	"github.com/cardforge/cardforge-api/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionRegistry holds in-progress review sessions, keyed by id and
// owned by a single user. Sessions live in memory only; abandoning one
// has no persistence side effect.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*userSession
}

// userSession guards one review session. The registry mutex only covers
// the map; concurrent requests for the same session id (two tabs, a
// retry racing a save) serialize on mu so that transitions and snapshot
// reads never interleave.
type userSession struct {
	mu      sync.Mutex
	userID  string
	session *review.Session
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: map[string]*userSession{}}
}

func (r *sessionRegistry) create(userID string, cards models.FlashcardList) (string, *userSession) {
	id := uuid.NewString()
	us := &userSession{userID: userID, session: review.NewSession(cards)}
	r.mu.Lock()
	r.sessions[id] = us
	r.mu.Unlock()
	return id, us
}

// get returns the session only to its owner; other users see nothing.
func (r *sessionRegistry) get(userID, id string) (*userSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	us, ok := r.sessions[id]
	if !ok || us.userID != userID {
		return nil, false
	}
	return us, true
}

func (r *sessionRegistry) remove(userID, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if us, ok := r.sessions[id]; ok && us.userID == userID {
		delete(r.sessions, id)
	}
}

// sessionState is the wire form of a session snapshot.
type sessionState struct {
	ID         string               `json:"id"`
	Position   int                  `json:"position"`
	Count      int                  `json:"count"`
	Revealed   bool                 `json:"revealed"`
	Editing    bool                 `json:"editing"`
	Flashcards models.FlashcardList `json:"flashcards"`
}

func snapshot(id string, s *review.Session) sessionState {
	return sessionState{
		ID:         id,
		Position:   s.Position(),
		Count:      s.Len(),
		Revealed:   s.Revealed(),
		Editing:    s.Editing(),
		Flashcards: s.Cards(),
	}
}

// CreateSession handles POST /api/sessions: opens a review session over
// the submitted card list.
func (a *API) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Flashcards models.FlashcardList `json:"flashcards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !req.Flashcards.Valid() {
		writeError(w, http.StatusBadRequest, "Each flashcard must have a question and an answer")
		return
	}

	id, us := a.sessions.create(userID, req.Flashcards)

	us.mu.Lock()
	state := snapshot(id, us.session)
	us.mu.Unlock()

	a.Log.Info("review session started",
		zap.String("session_id", id),
		zap.Int("cards", state.Count))
	writeJSON(w, http.StatusCreated, state)
}

// GetSession handles GET /api/sessions/{sessionID}.
func (a *API) GetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("sessionID")
	us, ok := a.sessions.get(userID, id)
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	us.mu.Lock()
	state := snapshot(id, us.session)
	us.mu.Unlock()

	writeJSON(w, http.StatusOK, state)
}

// SessionEvent handles POST /api/sessions/{sessionID}/events: applies
// one state-machine transition and returns the resulting state. The
// transition and the returned snapshot happen under the session lock,
// so the response always reflects a fully applied event.
func (a *API) SessionEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("sessionID")
	us, ok := a.sessions.get(userID, id)
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	us.mu.Lock()
	applied := true
	switch req.Type {
	case "reveal":
		us.session.ToggleReveal()
	case "next":
		us.session.Next()
	case "previous":
		us.session.Prev()
	case "beginEdit":
		us.session.BeginEdit()
	case "setQuestion":
		us.session.SetDraftQuestion(req.Value)
	case "setAnswer":
		us.session.SetDraftAnswer(req.Value)
	case "commitEdit":
		us.session.CommitEdit()
	case "abandonEdit":
		us.session.AbandonEdit()
	default:
		applied = false
	}
	state := snapshot(id, us.session)
	us.mu.Unlock()

	if !applied {
		writeError(w, http.StatusBadRequest, "Unknown event type")
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// SaveSession handles POST /api/sessions/{sessionID}/save: persists the
// session's committed cards under the given name. The session survives
// a failed save untouched and is discarded after a successful one.
func (a *API) SaveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := r.PathValue("sessionID")
	us, ok := a.sessions.get(userID, id)
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	us.mu.Lock()
	cards := us.session.Cards()
	us.mu.Unlock()

	if err := a.Store.Save(r.Context(), userID, req.Name, cards); err != nil {
		a.respondError(w, err)
		return
	}

	a.sessions.remove(userID, id)
	a.Log.Info("review session saved",
		zap.String("session_id", id),
		zap.String("name", req.Name))
	writeJSON(w, http.StatusCreated, map[string]any{"name": req.Name, "flashcards": cards})
}

// DiscardSession handles DELETE /api/sessions/{sessionID}: drops the
// session and all uncommitted state.
func (a *API) DiscardSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	a.sessions.remove(userID, r.PathValue("sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
