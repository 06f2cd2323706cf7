package models

import "strings"

// Flashcard is a single question/answer pair. It is a plain value type:
// cards have no identity beyond their position in the containing list.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FlashcardList is an ordered list of flashcards. Order is meaningful
// (it is the navigation order) and is preserved through generation,
// editing and storage round-trips.
type FlashcardList []Flashcard

// Clone returns an independent copy of the list.
func (l FlashcardList) Clone() FlashcardList {
	if l == nil {
		return nil
	}
	out := make(FlashcardList, len(l))
	copy(out, l)
	return out
}

// Valid reports whether every card has non-empty trimmed question and answer.
func (l FlashcardList) Valid() bool {
	for _, c := range l {
		if strings.TrimSpace(c.Question) == "" || strings.TrimSpace(c.Answer) == "" {
			return false
		}
	}
	return true
}
