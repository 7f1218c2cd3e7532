package study

import (
	"testing"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func TestSummarize(t *testing.T) {
	sessionID := uuid.New()
	outcomes := []models.CardOutcome{
		{SessionID: sessionID, Status: models.StatusEasy},
		{SessionID: sessionID, Status: models.StatusMedium},
		{SessionID: sessionID, Status: models.StatusForgot},
	}

	summary := Summarize(sessionID, outcomes)
	if summary.SessionID != sessionID {
		t.Errorf("SessionID = %s, want %s", summary.SessionID, sessionID)
	}
	if summary.Easy != 1 || summary.Medium != 1 || summary.Hard != 0 || summary.Forgot != 1 {
		t.Errorf("counts = easy:%d medium:%d hard:%d forgot:%d, want 1/1/0/1",
			summary.Easy, summary.Medium, summary.Hard, summary.Forgot)
	}
	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
}

func TestAggregatorOrderIndependence(t *testing.T) {
	sessionID := uuid.New()
	outcomes := []models.CardOutcome{
		{Status: models.StatusEasy},
		{Status: models.StatusEasy},
		{Status: models.StatusHard},
		{Status: models.StatusMedium},
		{Status: models.StatusForgot},
	}

	forward := NewAggregator(sessionID)
	for _, o := range outcomes {
		forward.Add(o)
	}
	backward := NewAggregator(sessionID)
	for i := len(outcomes) - 1; i >= 0; i-- {
		backward.Add(outcomes[i])
	}

	if forward.Summary() != backward.Summary() {
		t.Errorf("summaries differ by feed order: %+v vs %+v", forward.Summary(), backward.Summary())
	}
}

func TestAggregatorIgnoresInvalidStatus(t *testing.T) {
	agg := NewAggregator(uuid.New())
	agg.Add(models.CardOutcome{Status: models.StatusEasy})
	agg.Add(models.CardOutcome{Status: "corrupted"})

	summary := agg.Summary()
	if summary.Total != 1 || summary.Easy != 1 {
		t.Errorf("summary = %+v, want only the valid outcome counted", summary)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(uuid.New(), nil)
	if summary.Total != 0 {
		t.Errorf("Total = %d for empty session, want 0", summary.Total)
	}
}
