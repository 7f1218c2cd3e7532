// Package analytics computes read-only progress aggregates over study
// history. Every function here is a pure fold over the outcome and
// session records it is handed: no hidden state, identical output for
// identical input, safe to recompute on every call.
package analytics

import (
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// Filter narrows history to one deck and/or an inclusive date range.
// Zero-value Filter means "all history".
type Filter struct {
	DeckID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// Overview holds user-level aggregate stats.
type Overview struct {
	TotalCardsStudied     int     `json:"total_cards_studied"`
	TotalStudyTimeMinutes int64   `json:"total_study_time_minutes"`
	AverageAccuracy       float64 `json:"average_accuracy"`
	TotalSessions         int     `json:"total_sessions"`
	DecksInProgress       int     `json:"decks_in_progress"`
}

// sessionDecks maps each session to its deck for deck-scoped filtering.
func sessionDecks(sessions []models.StudySession) map[uuid.UUID]uuid.UUID {
	decks := make(map[uuid.UUID]uuid.UUID, len(sessions))
	for _, s := range sessions {
		decks[s.ID] = s.DeckID
	}
	return decks
}

// filterOutcomes applies the deck and date-range filter. Outcomes whose
// session is unknown are kept unless a deck filter is set.
func filterOutcomes(outcomes []models.CardOutcome, decks map[uuid.UUID]uuid.UUID, f Filter) []models.CardOutcome {
	filtered := make([]models.CardOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		if f.DeckID != nil {
			deckID, ok := decks[o.SessionID]
			if !ok || deckID != *f.DeckID {
				continue
			}
		}
		if f.StartDate != nil && o.RecordedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && o.RecordedAt.After(*f.EndDate) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// accuracy returns the correctness ratio as a percentage, defined as 0
// when the outcome set is empty.
func accuracy(outcomes []models.CardOutcome) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	correct := 0
	for _, o := range outcomes {
		if o.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes)) * 100
}

// studyTimeMinutes sums recorded response times, in whole minutes.
func studyTimeMinutes(outcomes []models.CardOutcome) int64 {
	var totalMs int64
	for _, o := range outcomes {
		if o.ResponseTimeMs != nil {
			totalMs += int64(*o.ResponseTimeMs)
		}
	}
	return totalMs / 60000
}

// ComputeOverview aggregates user-level stats over the filtered history.
func ComputeOverview(outcomes []models.CardOutcome, sessions []models.StudySession, f Filter) Overview {
	decks := sessionDecks(sessions)
	filtered := filterOutcomes(outcomes, decks, f)

	sessionSeen := make(map[uuid.UUID]struct{})
	deckSeen := make(map[uuid.UUID]struct{})
	for _, o := range filtered {
		sessionSeen[o.SessionID] = struct{}{}
		if deckID, ok := decks[o.SessionID]; ok {
			deckSeen[deckID] = struct{}{}
		}
	}

	return Overview{
		TotalCardsStudied:     len(filtered),
		TotalStudyTimeMinutes: studyTimeMinutes(filtered),
		AverageAccuracy:       accuracy(filtered),
		TotalSessions:         len(sessionSeen),
		DecksInProgress:       len(deckSeen),
	}
}
