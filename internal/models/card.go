package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card is owned by its deck; the study engine only ever reads it.
type Card struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeckID    uuid.UUID `gorm:"type:uuid;index;not null" json:"deck_id"`
	Front     string    `gorm:"not null" json:"front"`
	Back      string    `gorm:"not null" json:"back"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CardSearchResult pairs a matched card with its deck's name so search
// results can link back to the deck.
type CardSearchResult struct {
	Card
	DeckName string `json:"deck_name"`
}
