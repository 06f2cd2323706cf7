// Package store persists named flashcard sets per user. Each user has an
// index (the set names, in insertion order) and one detail row per set
// (the cards themselves). Index and detail are always written and removed
// together inside one database transaction, so a set name never appears
// in the index without its cards or vice versa.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cardforge/cardforge-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by Load when no detail row exists for the
// requested (user, name) key.
var ErrNotFound = errors.New("flashcard set not found")

// ErrInvalidName is returned by Save when the set name is empty or
// whitespace-only.
var ErrInvalidName = errors.New("set name must not be empty")

// SetStore is the durable mapping from (userID, name) to a flashcard set.
type SetStore struct {
	db *gorm.DB
}

// NewSetStore creates a SetStore backed by db.
func NewSetStore(db *gorm.DB) *SetStore {
	return &SetStore{db: db}
}

// List returns the user's set refs in insertion order. A user with no
// index yet gets an empty index created lazily; the insert uses an
// ON CONFLICT DO NOTHING so it cannot race with a concurrent Save.
func (s *SetStore) List(ctx context.Context, userID string) ([]models.FlashcardSetRef, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserIndex{UserID: userID}).Error
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	var refs []models.FlashcardSetRef
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&refs).Error
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}

	if refs == nil {
		refs = []models.FlashcardSetRef{}
	}
	return refs, nil
}

// Load returns the cards stored under (userID, name), or ErrNotFound.
// An index entry whose detail row is missing is surfaced as ErrNotFound
// rather than silently healed.
func (s *SetStore) Load(ctx context.Context, userID, name string) (models.FlashcardList, error) {
	var detail models.FlashcardSetDetail
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load detail: %w", err)
	}

	var cards models.FlashcardList
	if err := json.Unmarshal(detail.Flashcards, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	if cards == nil {
		cards = models.FlashcardList{}
	}
	return cards, nil
}

// Save stores cards under (userID, name) in one transaction: the index
// row is ensured, the name is added to the index as an atomic membership
// insert (no duplicate entry when the name already exists), and the
// detail row is upserted. Saving an existing name overwrites its cards,
// last write wins. Either every write lands or none does.
func (s *SetStore) Save(ctx context.Context, userID, name string, cards models.FlashcardList) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if cards == nil {
		cards = models.FlashcardList{}
	}

	payload, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.UserIndex{UserID: userID}).Error
		if err != nil {
			return fmt.Errorf("ensure index: %w", err)
		}

		ref := models.FlashcardSetRef{UserID: userID, Name: name}
		err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&ref).Error
		if err != nil {
			return fmt.Errorf("add ref: %w", err)
		}

		detail := models.FlashcardSetDetail{
			UserID:     userID,
			Name:       name,
			Flashcards: datatypes.JSON(payload),
		}
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"flashcards", "updated_at"}),
		}).Create(&detail).Error
		if err != nil {
			return fmt.Errorf("write detail: %w", err)
		}

		return nil
	})
}

// Delete removes the name from the index and drops the detail row in one
// transaction. Deleting a name that was never saved is a no-op success.
func (s *SetStore) Delete(ctx context.Context, userID, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND name = ?", userID, name).
			Delete(&models.FlashcardSetRef{}).Error
		if err != nil {
			return fmt.Errorf("remove ref: %w", err)
		}

		err = tx.Where("user_id = ? AND name = ?", userID, name).
			Delete(&models.FlashcardSetDetail{}).Error
		if err != nil {
			return fmt.Errorf("remove detail: %w", err)
		}

		return nil
	})
}
