package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cardforge/cardforge-api/extract"
	"github.com/cardforge/cardforge-api/utils"
	"go.uber.org/zap"
)

// Generate handles POST /api/generate: notes in, validated flashcard
// list out. One provider request per call, no retries.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserID(r); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cards, err := a.Generator.GenerateCards(r.Context(), req.Notes)
	if err != nil {
		a.respondError(w, err)
		return
	}

	a.Log.Info("generated flashcards", zap.Int("count", len(cards)))
	writeJSON(w, http.StatusOK, cards)
}

// ExtractText handles POST /api/extract: a multipart file upload is
// turned into plain notes text for a later generate call.
func (a *API) ExtractText(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserID(r); !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	text, err := extract.Text(header.Filename, file)
	if errors.Is(err, extract.ErrUnsupported) {
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported document type")
		return
	}
	if errors.Is(err, extract.ErrTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Document too large")
		return
	}
	if err != nil {
		a.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}
