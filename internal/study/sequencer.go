package study

import (
	"sync"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// Sequencer drives one study pass over a fixed ordered card list. It
// moves through Ready(i) -> Revealed(i) -> Ready(i+1) ... -> Complete,
// emitting exactly one outcome per answered card via the Recorder.
//
// A sequencer over zero cards is Complete from construction; callers
// should report "nothing to study" rather than treat that as an error.
//
// All methods are safe for concurrent use; a mutex serializes the
// transitions so two requests for the same session cannot race.
type Sequencer struct {
	sessionID uuid.UUID
	userID    uuid.UUID
	cards     []models.Card
	recorder  *Recorder

	mu       sync.Mutex
	index    int
	revealed bool
	complete bool
	// When the current card was first shown, for response timing.
	shownAt time.Time

	now func() time.Time
}

// NewSequencer begins a fresh pass at the first card.
func NewSequencer(sessionID, userID uuid.UUID, cards []models.Card, recorder *Recorder) *Sequencer {
	s := &Sequencer{
		sessionID: sessionID,
		userID:    userID,
		cards:     cards,
		recorder:  recorder,
		now:       time.Now,
	}
	if len(cards) == 0 {
		s.complete = true
		return s
	}
	s.shownAt = s.now()
	return s
}

// ResumeSequencer rebuilds a sequencer for a session that already has
// answered outcomes recorded, positioning it at the next unanswered
// card. Used when the in-memory sequencer was lost (restart, expiry).
func ResumeSequencer(sessionID, userID uuid.UUID, cards []models.Card, recorder *Recorder, answered int) *Sequencer {
	s := NewSequencer(sessionID, userID, cards, recorder)
	if answered < 0 {
		answered = 0
	}
	if answered >= len(cards) {
		s.complete = true
		return s
	}
	s.index = answered
	s.shownAt = s.now()
	return s
}

// Current returns the card being studied.
func (s *Sequencer) Current() (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complete {
		return models.Card{}, ErrSessionComplete
	}
	return s.cards[s.index], nil
}

// Index returns the zero-based position of the current card.
func (s *Sequencer) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Len returns the number of cards in this pass.
func (s *Sequencer) Len() int { return len(s.cards) }

// Revealed reports whether the current card's back side is showing.
func (s *Sequencer) Revealed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revealed
}

// Complete reports whether the pass has finished.
func (s *Sequencer) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Progress returns (index+1)/total, in (0, 1] while not complete and
// 1 once complete. Zero-card passes report 1.
func (s *Sequencer) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cards) == 0 || s.complete {
		return 1
	}
	return float64(s.index+1) / float64(len(s.cards))
}

// Flip toggles between the front and back of the current card. Flipping
// an already-revealed card turns it face-down again.
func (s *Sequencer) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complete {
		return ErrSessionComplete
	}
	s.revealed = !s.revealed
	return nil
}

// Answer records an outcome for the current card and advances. Only
// legal from the Revealed state; anything else is an out-of-sequence
// answer and leaves all state untouched.
func (s *Sequencer) Answer(status models.CardStatus, opts *RecordOptions) (*models.CardOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complete {
		return nil, ErrSessionComplete
	}
	if !s.revealed {
		return nil, ErrOutOfSequence
	}

	card := s.cards[s.index]
	outcome, err := s.recorder.Record(s.sessionID, card.ID, s.userID, status, s.shownAt, s.now(), opts)
	if err != nil {
		return nil, err
	}

	s.advance()
	return outcome, nil
}

// Skip records the current card as forgot with no timing measurement
// and advances. Legal from the Ready state.
func (s *Sequencer) Skip() (*models.CardOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.complete {
		return nil, ErrSessionComplete
	}
	if s.revealed {
		return nil, ErrOutOfSequence
	}

	card := s.cards[s.index]
	outcome, err := s.recorder.Record(s.sessionID, card.ID, s.userID, models.StatusForgot, time.Time{}, s.now(), nil)
	if err != nil {
		return nil, err
	}

	s.advance()
	return outcome, nil
}

func (s *Sequencer) advance() {
	s.revealed = false
	if s.index+1 >= len(s.cards) {
		s.complete = true
		return
	}
	s.index++
	s.shownAt = s.now()
}
