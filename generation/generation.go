// Package generation turns free-text study notes into a validated
// flashcard list by calling an external language model. One call issues
// exactly one outbound request; retry policy belongs to the caller,
// which is always safe because a failed generation has no side effects.
package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardforge/cardforge-api/models"
)

// Client produces a flashcard list from notes text.
type Client interface {
	// GenerateCards sends notes to the provider and returns the
	// schema-validated flashcard list, or a typed failure: ErrNoInput,
	// ErrRefused, ErrEmptyResponse, *MalformedError or *HTTPError.
	GenerateCards(ctx context.Context, notes string) (models.FlashcardList, error)
}

// ErrNoInput is returned for empty or whitespace-only notes, before any
// outbound request is made.
var ErrNoInput = errors.New("no notes provided")

// ErrRefused is returned when the provider declines to produce output.
var ErrRefused = errors.New("provider refused to generate flashcards")

// ErrEmptyResponse is returned when the provider answers with no content.
var ErrEmptyResponse = errors.New("provider returned no content")

// MalformedError wraps the validation failure for provider output that
// does not parse or does not match the flashcard-list shape.
type MalformedError struct {
	Reason error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed provider response: %v", e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Reason }

// HTTPError reports a non-success status from the provider API.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider http %d: %s", e.StatusCode, e.Body)
}
