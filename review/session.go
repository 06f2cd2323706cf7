// Package review implements the in-memory review session: navigating,
// revealing and editing a flashcard list before it is persisted. The
// session is a plain state machine driven by discrete transitions, so
// any surface (HTTP handler, CLI, test harness) can operate it.
package review

import "github.com/cardforge/cardforge-api/models"

// draft holds pending edits for the card at the current position.
// An empty field means "unchanged", not "erase".
type draft struct {
	question string
	answer   string
}

// Session is a single-user, single-list review session. It owns its card
// list; edits are committed copy-on-write so a snapshot taken before a
// commit is never mutated underneath the caller.
type Session struct {
	cards    models.FlashcardList
	position int
	revealed bool
	draft    *draft
}

// NewSession starts a session over cards at position 0, answer hidden,
// no edit in progress.
func NewSession(cards models.FlashcardList) *Session {
	return &Session{cards: cards.Clone()}
}

// Len returns the number of cards in the session.
func (s *Session) Len() int { return len(s.cards) }

// Position returns the current card index.
func (s *Session) Position() int { return s.position }

// Revealed reports whether the answer side is showing.
func (s *Session) Revealed() bool { return s.revealed }

// Editing reports whether an edit draft is open.
func (s *Session) Editing() bool { return s.draft != nil }

// Current returns the card at the current position. ok is false for an
// empty session.
func (s *Session) Current() (models.Flashcard, bool) {
	if len(s.cards) == 0 {
		return models.Flashcard{}, false
	}
	return s.cards[s.position], true
}

// Cards returns the committed card list. An open, uncommitted draft is
// never visible in the returned list.
func (s *Session) Cards() models.FlashcardList {
	return s.cards.Clone()
}

// ToggleReveal flips the reveal state. Position and cards are untouched.
func (s *Session) ToggleReveal() {
	s.revealed = !s.revealed
}

// Next advances to the following card, wrapping from the last card back
// to the first. The answer is hidden again. No-op on an empty session.
func (s *Session) Next() {
	if len(s.cards) == 0 {
		return
	}
	s.position = (s.position + 1) % len(s.cards)
	s.revealed = false
}

// Prev retreats to the preceding card, wrapping from the first card to
// the last. The answer is hidden again. No-op on an empty session.
func (s *Session) Prev() {
	if len(s.cards) == 0 {
		return
	}
	s.position = (s.position - 1 + len(s.cards)) % len(s.cards)
	s.revealed = false
}

// BeginEdit opens an edit draft for the current card with both fields
// empty, meaning "unchanged". No-op on an empty session.
func (s *Session) BeginEdit() {
	if len(s.cards) == 0 {
		return
	}
	s.draft = &draft{}
}

// SetDraftQuestion records a question override. An empty string means no
// override yet. No-op unless a draft is open.
func (s *Session) SetDraftQuestion(q string) {
	if s.draft == nil {
		return
	}
	s.draft.question = q
}

// SetDraftAnswer records an answer override. An empty string means no
// override yet. No-op unless a draft is open.
func (s *Session) SetDraftAnswer(a string) {
	if s.draft == nil {
		return
	}
	s.draft.answer = a
}

// CommitEdit replaces the current card with the draft values, keeping
// the original text for any draft field left empty, then closes the
// draft. The card list is replaced, not mutated in place. No-op unless
// a draft is open.
func (s *Session) CommitEdit() {
	if s.draft == nil {
		return
	}

	current := s.cards[s.position]
	updated := current
	if s.draft.question != "" {
		updated.Question = s.draft.question
	}
	if s.draft.answer != "" {
		updated.Answer = s.draft.answer
	}

	next := s.cards.Clone()
	next[s.position] = updated
	s.cards = next
	s.draft = nil
}

// AbandonEdit discards the draft without touching the cards.
func (s *Session) AbandonEdit() {
	s.draft = nil
}
