package models

import "time"

// UserIndex is the per-user index row. It exists so that listing a user's
// sets has a durable anchor even before the first save; it is created
// lazily on first access and its refs live in FlashcardSetRef.
type UserIndex struct {
	UserID    string    `gorm:"primaryKey;size:128"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
