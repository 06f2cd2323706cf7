// Package schema enforces the flashcard-list shape produced by generation.
// Validation is structural: the input must be an object exposing a
// "flashcards" array whose elements carry string "question" and "answer"
// fields. Both fields must be non-empty after trimming so that blank
// cards never reach a review session or the store.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cardforge/cardforge-api/models"
)

// ErrNotAnArray is returned when the "flashcards" field exists but is
// not an array.
var ErrNotAnArray = errors.New("flashcards field is not an array")

// MissingFieldError reports an absent required field. Index is the
// element position inside the flashcards array, or -1 for the top level.
type MissingFieldError struct {
	Field string
	Index int
}

func (e *MissingFieldError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("missing field %q", e.Field)
	}
	return fmt.Sprintf("flashcards[%d]: missing field %q", e.Index, e.Field)
}

// WrongTypeError reports a field of the wrong type. Index is -1 for the
// top level.
type WrongTypeError struct {
	Field string
	Index int
	Want  string
}

func (e *WrongTypeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("field %q is not a %s", e.Field, e.Want)
	}
	return fmt.Sprintf("flashcards[%d]: field %q is not a %s", e.Index, e.Field, e.Want)
}

// EmptyFieldError reports a field that is empty or whitespace-only.
type EmptyFieldError struct {
	Field string
	Index int
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("flashcards[%d]: field %q is empty", e.Index, e.Field)
}

// Validate parses data as JSON and validates it against the flashcard-list
// shape, returning the typed list or the specific structural failure.
func Validate(data []byte) (models.FlashcardList, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return ValidateValue(v)
}

// ValidateValue validates an already-parsed value. See Validate.
func ValidateValue(v any) (models.FlashcardList, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &WrongTypeError{Field: "(root)", Index: -1, Want: "object"}
	}

	raw, ok := obj["flashcards"]
	if !ok {
		return nil, &MissingFieldError{Field: "flashcards", Index: -1}
	}

	arr, ok := raw.([]any)
	if !ok {
		return nil, ErrNotAnArray
	}

	cards := make(models.FlashcardList, 0, len(arr))
	for i, el := range arr {
		entry, ok := el.(map[string]any)
		if !ok {
			return nil, &WrongTypeError{Field: "flashcard", Index: i, Want: "object"}
		}

		question, err := stringField(entry, "question", i)
		if err != nil {
			return nil, err
		}
		answer, err := stringField(entry, "answer", i)
		if err != nil {
			return nil, err
		}

		cards = append(cards, models.Flashcard{Question: question, Answer: answer})
	}

	return cards, nil
}

func stringField(entry map[string]any, field string, index int) (string, error) {
	raw, ok := entry[field]
	if !ok {
		return "", &MissingFieldError{Field: field, Index: index}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &WrongTypeError{Field: field, Index: index, Want: "string"}
	}
	if strings.TrimSpace(s) == "" {
		return "", &EmptyFieldError{Field: field, Index: index}
	}
	return s, nil
}
