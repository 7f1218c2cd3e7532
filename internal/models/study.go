package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CardStatus is the closed set of per-card outcome judgments.
type CardStatus string

const (
	StatusEasy   CardStatus = "easy"
	StatusMedium CardStatus = "medium"
	StatusHard   CardStatus = "hard"
	StatusForgot CardStatus = "forgot"
)

// Valid reports whether s is one of the four enumerated statuses.
func (s CardStatus) Valid() bool {
	switch s {
	case StatusEasy, StatusMedium, StatusHard, StatusForgot:
		return true
	}
	return false
}

// Correct reports the default correctness derivation: easy and medium
// count as correct, hard and forgot do not.
func (s CardStatus) Correct() bool {
	return s == StatusEasy || s == StatusMedium
}

// StudySession is one continuous study pass over an ordered card list.
// CardOrder pins the traversal order so an abandoned session can be
// resumed deterministically.
type StudySession struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	DeckID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"deck_id"`
	StudyMode   string         `gorm:"default:standard" json:"study_mode"`
	CardOrder   pq.StringArray `gorm:"type:text[]" json:"card_order"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s *StudySession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now().UTC()
	}
	return nil
}

// CardOutcome records a single judgment of how well the user knew one
// card. Outcomes are append-only; the engine never mutates or deletes
// them.
type CardOutcome struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"session_id"`
	CardID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"card_id"`
	UserID         uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Status         CardStatus `gorm:"not null" json:"status"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty"`
	UserAnswer     *string    `json:"user_answer,omitempty"`
	IsCorrect      bool       `json:"is_correct"`
	RecordedAt     time.Time  `json:"recorded_at"`
}

func (o *CardOutcome) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// SessionSummary counts a session's outcomes by status. Derived, never
// persisted.
type SessionSummary struct {
	SessionID uuid.UUID `json:"session_id"`
	Easy      int       `json:"easy"`
	Medium    int       `json:"medium"`
	Hard      int       `json:"hard"`
	Forgot    int       `json:"forgot"`
	Total     int       `json:"total"`
}
