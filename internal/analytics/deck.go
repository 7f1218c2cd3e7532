package analytics

import (
	"sort"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// DeckProgress buckets a deck's cards by their most recent outcome and
// derives mastery. A card is "learned" when its latest outcome carries a
// learned status (easy by default), "new" when it has never been
// studied, and "reviewing" otherwise.
type DeckProgress struct {
	DeckID            uuid.UUID  `json:"deck_id"`
	DeckName          string     `json:"deck_name"`
	TotalCards        int        `json:"total_cards"`
	CardsLearned      int        `json:"cards_learned"`
	CardsReviewing    int        `json:"cards_reviewing"`
	CardsNew          int        `json:"cards_new"`
	MasteryPercentage float64    `json:"mastery_percentage"`
	AverageAccuracy   float64    `json:"average_accuracy"`
	LastStudied       *time.Time `json:"last_studied,omitempty"`
}

// CardPerformance summarizes how one card has fared across all reviews.
// AccuracyRate is a 0..1 fraction so that DifficultyScore = 1 - rate.
type CardPerformance struct {
	CardID                uuid.UUID  `json:"card_id"`
	Front                 string     `json:"front"`
	TotalReviews          int        `json:"total_reviews"`
	CorrectCount          int        `json:"correct_count"`
	AccuracyRate          float64    `json:"accuracy_rate"`
	DifficultyScore       float64    `json:"difficulty_score"`
	AverageResponseTimeMs *int       `json:"average_response_time_ms,omitempty"`
	LastReviewed          *time.Time `json:"last_reviewed,omitempty"`
}

// Policy carries the analytics knobs that are deliberate design choices
// rather than discovered invariants.
type Policy struct {
	// LearnedStatuses decides which latest outcome marks a card learned.
	LearnedStatuses []models.CardStatus
}

// DefaultPolicy marks a card learned only when its latest outcome is easy.
func DefaultPolicy() Policy {
	return Policy{LearnedStatuses: []models.CardStatus{models.StatusEasy}}
}

func (p Policy) learned(status models.CardStatus) bool {
	for _, s := range p.LearnedStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// latestByCard resolves duplicates with "most recent wins".
func latestByCard(outcomes []models.CardOutcome) map[uuid.UUID]models.CardOutcome {
	latest := make(map[uuid.UUID]models.CardOutcome)
	for _, o := range outcomes {
		prev, ok := latest[o.CardID]
		if !ok || o.RecordedAt.After(prev.RecordedAt) {
			latest[o.CardID] = o
		}
	}
	return latest
}

// ComputeDeckProgress buckets one deck's cards from its outcome history.
// The outcomes slice should already be scoped to the deck's cards; stray
// outcomes for other cards are ignored.
func ComputeDeckProgress(deck models.Deck, cards []models.Card, outcomes []models.CardOutcome, policy Policy) DeckProgress {
	inDeck := make(map[uuid.UUID]struct{}, len(cards))
	for _, c := range cards {
		inDeck[c.ID] = struct{}{}
	}
	scoped := make([]models.CardOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		if _, ok := inDeck[o.CardID]; ok {
			scoped = append(scoped, o)
		}
	}

	latest := latestByCard(scoped)

	progress := DeckProgress{
		DeckID:     deck.ID,
		DeckName:   deck.Name,
		TotalCards: len(cards),
	}
	for _, c := range cards {
		o, studied := latest[c.ID]
		switch {
		case !studied:
			progress.CardsNew++
		case policy.learned(o.Status):
			progress.CardsLearned++
		default:
			progress.CardsReviewing++
		}
	}

	if progress.TotalCards > 0 {
		progress.MasteryPercentage = float64(progress.CardsLearned) / float64(progress.TotalCards) * 100
	}
	progress.AverageAccuracy = accuracy(scoped)

	for _, o := range scoped {
		if progress.LastStudied == nil || o.RecordedAt.After(*progress.LastStudied) {
			t := o.RecordedAt
			progress.LastStudied = &t
		}
	}

	return progress
}

// ComputeCardPerformance ranks studied cards worst-accuracy first so the
// caller can surface a "needing review" list. Ties break toward the most
// recently reviewed card. Cards with no outcomes are omitted.
func ComputeCardPerformance(cards []models.Card, outcomes []models.CardOutcome, sessions []models.StudySession, f Filter, limit int) []CardPerformance {
	filtered := filterOutcomes(outcomes, sessionDecks(sessions), f)

	byCard := make(map[uuid.UUID][]models.CardOutcome)
	for _, o := range filtered {
		byCard[o.CardID] = append(byCard[o.CardID], o)
	}

	fronts := make(map[uuid.UUID]string, len(cards))
	for _, c := range cards {
		fronts[c.ID] = c.Front
	}

	performance := make([]CardPerformance, 0, len(byCard))
	for cardID, cardOutcomes := range byCard {
		perf := CardPerformance{
			CardID:       cardID,
			Front:        fronts[cardID],
			TotalReviews: len(cardOutcomes),
		}

		var totalMs, timed int
		for _, o := range cardOutcomes {
			if o.IsCorrect {
				perf.CorrectCount++
			}
			if o.ResponseTimeMs != nil {
				totalMs += *o.ResponseTimeMs
				timed++
			}
			if perf.LastReviewed == nil || o.RecordedAt.After(*perf.LastReviewed) {
				t := o.RecordedAt
				perf.LastReviewed = &t
			}
		}

		perf.AccuracyRate = float64(perf.CorrectCount) / float64(perf.TotalReviews)
		perf.DifficultyScore = 1 - perf.AccuracyRate
		if timed > 0 {
			avg := totalMs / timed
			perf.AverageResponseTimeMs = &avg
		}

		performance = append(performance, perf)
	}

	sort.Slice(performance, func(i, j int) bool {
		if performance[i].AccuracyRate != performance[j].AccuracyRate {
			return performance[i].AccuracyRate < performance[j].AccuracyRate
		}
		return performance[i].LastReviewed != nil && performance[j].LastReviewed != nil &&
			performance[i].LastReviewed.After(*performance[j].LastReviewed)
	})

	if limit > 0 && len(performance) > limit {
		performance = performance[:limit]
	}
	return performance
}
