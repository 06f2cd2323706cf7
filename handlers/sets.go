package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cardforge/cardforge-api/models"
	"github.com/cardforge/cardforge-api/utils"
	"go.uber.org/zap"
)

// ListSets handles GET /api/sets: the user's set names in insertion
// order, without card contents.
func (a *API) ListSets(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	refs, err := a.Store.List(r.Context(), userID)
	if err != nil {
		a.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"flashcardSets": refs})
}

// GetSet handles GET /api/sets/{name}: the full card list for one set.
func (a *API) GetSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	cards, err := a.Store.Load(r.Context(), userID, name)
	if err != nil {
		a.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"name": name, "flashcards": cards})
}

// SaveSet handles POST /api/sets: stores a named card list. Saving an
// existing name overwrites its cards.
func (a *API) SaveSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Name       string               `json:"name"`
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

	if err := a.Store.Save(r.Context(), userID, req.Name, req.Flashcards); err != nil {
		a.respondError(w, err)
		return
	}

	a.Log.Info("saved flashcard set",
		zap.String("name", req.Name),
		zap.Int("cards", len(req.Flashcards)))
	writeJSON(w, http.StatusCreated, map[string]any{"name": req.Name, "flashcards": req.Flashcards})
}

// DeleteSet handles DELETE /api/sets/{name}. Deleting an absent set is
// a success.
func (a *API) DeleteSet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("name")
	if err := a.Store.Delete(r.Context(), userID, name); err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
