package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder groups decks; folders may nest via ParentFolderID.
type Folder struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	ParentFolderID *uuid.UUID `gorm:"type:uuid" json:"parent_folder_id,omitempty"`
	Name           string     `gorm:"not null" json:"name"`
	Position       int        `json:"position"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type Deck struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	FolderID    *uuid.UUID `gorm:"type:uuid;index" json:"folder_id,omitempty"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	IsPublic    bool       `json:"is_public"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (d *Deck) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DeckWithStats augments a deck with listing metadata.
type DeckWithStats struct {
	Deck
	CardCount   int64      `json:"card_count"`
	LastStudied *time.Time `json:"last_studied,omitempty"`
}
