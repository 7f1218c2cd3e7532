package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func ms(v int) *int { return &v }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 0.01 }

func TestComputeOverview(t *testing.T) {
	deckA, deckB := uuid.New(), uuid.New()
	sessionA := models.StudySession{ID: uuid.New(), DeckID: deckA}
	sessionB := models.StudySession{ID: uuid.New(), DeckID: deckB}
	sessions := []models.StudySession{sessionA, sessionB}

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	outcomes := []models.CardOutcome{
		{SessionID: sessionA.ID, CardID: uuid.New(), IsCorrect: true, ResponseTimeMs: ms(90000), RecordedAt: at},
		{SessionID: sessionA.ID, CardID: uuid.New(), IsCorrect: true, ResponseTimeMs: ms(30000), RecordedAt: at},
		{SessionID: sessionB.ID, CardID: uuid.New(), IsCorrect: false, ResponseTimeMs: ms(15000), RecordedAt: at},
	}

	overview := ComputeOverview(outcomes, sessions, Filter{})
	if overview.TotalCardsStudied != 3 {
		t.Errorf("TotalCardsStudied = %d, want 3", overview.TotalCardsStudied)
	}
	if !almostEqual(overview.AverageAccuracy, 66.67) {
		t.Errorf("AverageAccuracy = %v, want ~66.67", overview.AverageAccuracy)
	}
	if overview.TotalStudyTimeMinutes != 2 {
		t.Errorf("TotalStudyTimeMinutes = %d, want 2", overview.TotalStudyTimeMinutes)
	}
	if overview.TotalSessions != 2 {
		t.Errorf("TotalSessions = %d, want 2", overview.TotalSessions)
	}
	if overview.DecksInProgress != 2 {
		t.Errorf("DecksInProgress = %d, want 2", overview.DecksInProgress)
	}
}

func TestComputeOverviewEmptyHistory(t *testing.T) {
	overview := ComputeOverview(nil, nil, Filter{})
	if overview.AverageAccuracy != 0 {
		t.Errorf("AverageAccuracy = %v on empty history, want 0", overview.AverageAccuracy)
	}
	if overview.TotalCardsStudied != 0 || overview.TotalSessions != 0 {
		t.Errorf("empty history produced non-zero overview: %+v", overview)
	}
}

func TestFilterByDeck(t *testing.T) {
	deckA, deckB := uuid.New(), uuid.New()
	sessionA := models.StudySession{ID: uuid.New(), DeckID: deckA}
	sessionB := models.StudySession{ID: uuid.New(), DeckID: deckB}
	sessions := []models.StudySession{sessionA, sessionB}

	outcomes := []models.CardOutcome{
		{SessionID: sessionA.ID, IsCorrect: true},
		{SessionID: sessionB.ID, IsCorrect: false},
		{SessionID: uuid.New(), IsCorrect: false}, // orphaned session
	}

	overview := ComputeOverview(outcomes, sessions, Filter{DeckID: &deckA})
	if overview.TotalCardsStudied != 1 {
		t.Errorf("TotalCardsStudied = %d with deck filter, want 1", overview.TotalCardsStudied)
	}
	if overview.AverageAccuracy != 100 {
		t.Errorf("AverageAccuracy = %v with deck filter, want 100", overview.AverageAccuracy)
	}
}

func TestFilterByDateRange(t *testing.T) {
	session := models.StudySession{ID: uuid.New(), DeckID: uuid.New()}
	day := func(d int) time.Time { return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC) }

	outcomes := []models.CardOutcome{
		{SessionID: session.ID, RecordedAt: day(1)},
		{SessionID: session.ID, RecordedAt: day(5)},
		{SessionID: session.ID, RecordedAt: day(9)},
	}

	start, end := day(1), day(5)
	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "no bounds", filter: Filter{}, want: 3},
		{name: "inclusive range", filter: Filter{StartDate: &start, EndDate: &end}, want: 2},
		{name: "start only", filter: Filter{StartDate: &end}, want: 2},
		{name: "end only", filter: Filter{EndDate: &start}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOverview(outcomes, []models.StudySession{session}, tt.filter)
			if got.TotalCardsStudied != tt.want {
				t.Errorf("TotalCardsStudied = %d, want %d", got.TotalCardsStudied, tt.want)
			}
		})
	}
}
