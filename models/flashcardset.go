package models

import (
	"time"

	"gorm.io/datatypes"
)

// FlashcardSetRef is one entry in a user's set index: a name the user has
// saved, without the card contents. Rows are returned in insertion order.
type FlashcardSetRef struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;size:128;uniqueIndex:idx_ref_user_name" json:"-"`
	Name      string    `gorm:"not null;size:200;uniqueIndex:idx_ref_user_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// FlashcardSetDetail holds the full card contents for one named set,
// keyed by (user, name). Cards are stored as a JSON document so the
// list round-trips byte-for-byte in its original order.
type FlashcardSetDetail struct {
	ID         uint           `gorm:"primaryKey" json:"-"`
	UserID     string         `gorm:"not null;size:128;uniqueIndex:idx_detail_user_name" json:"-"`
	Name       string         `gorm:"not null;size:200;uniqueIndex:idx_detail_user_name" json:"name"`
	Flashcards datatypes.JSON `gorm:"not null" json:"flashcards"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"-"`
}
