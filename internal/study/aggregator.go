package study

import (
	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

// Aggregator folds a session's outcomes into a SessionSummary. The fold
// is order-independent, so feeding outcomes incrementally as they arrive
// or batching them after the fact yields the same counts.
type Aggregator struct {
	summary models.SessionSummary
}

func NewAggregator(sessionID uuid.UUID) *Aggregator {
	return &Aggregator{summary: models.SessionSummary{SessionID: sessionID}}
}

// Add folds one outcome into the running totals.
func (a *Aggregator) Add(outcome models.CardOutcome) {
	switch outcome.Status {
	case models.StatusEasy:
		a.summary.Easy++
	case models.StatusMedium:
		a.summary.Medium++
	case models.StatusHard:
		a.summary.Hard++
	case models.StatusForgot:
		a.summary.Forgot++
	default:
		// Invalid statuses never reach the aggregator; the recorder
		// rejects them at the trust boundary.
		return
	}
	a.summary.Total++
}

// Summary returns the current totals.
func (a *Aggregator) Summary() models.SessionSummary {
	return a.summary
}

// Summarize computes a summary from a batch of outcomes in one pass.
func Summarize(sessionID uuid.UUID, outcomes []models.CardOutcome) models.SessionSummary {
	agg := NewAggregator(sessionID)
	for _, o := range outcomes {
		agg.Add(o)
	}
	return agg.Summary()
}
