package analytics

import (
	"testing"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func TestComputeDeckProgress(t *testing.T) {
	deck := models.Deck{ID: uuid.New(), Name: "French Vocab"}
	cards := []models.Card{
		{ID: uuid.New(), DeckID: deck.ID},
		{ID: uuid.New(), DeckID: deck.ID},
		{ID: uuid.New(), DeckID: deck.ID},
	}

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	outcomes := []models.CardOutcome{
		{CardID: cards[0].ID, Status: models.StatusEasy, IsCorrect: true, RecordedAt: at},
		{CardID: cards[1].ID, Status: models.StatusHard, IsCorrect: false, RecordedAt: at.Add(time.Minute)},
		// cards[2] never studied
	}

	progress := ComputeDeckProgress(deck, cards, outcomes, DefaultPolicy())
	if progress.TotalCards != 3 {
		t.Errorf("TotalCards = %d, want 3", progress.TotalCards)
	}
	if progress.CardsLearned != 1 || progress.CardsReviewing != 1 || progress.CardsNew != 1 {
		t.Errorf("buckets = learned:%d reviewing:%d new:%d, want 1/1/1",
			progress.CardsLearned, progress.CardsReviewing, progress.CardsNew)
	}
	if !almostEqual(progress.MasteryPercentage, 33.33) {
		t.Errorf("MasteryPercentage = %v, want ~33.33", progress.MasteryPercentage)
	}
	if progress.AverageAccuracy != 50 {
		t.Errorf("AverageAccuracy = %v, want 50", progress.AverageAccuracy)
	}
	if progress.LastStudied == nil || !progress.LastStudied.Equal(at.Add(time.Minute)) {
		t.Errorf("LastStudied = %v, want %v", progress.LastStudied, at.Add(time.Minute))
	}
}

func TestDeckProgressLatestOutcomeWins(t *testing.T) {
	deck := models.Deck{ID: uuid.New(), Name: "Kanji"}
	card := models.Card{ID: uuid.New(), DeckID: deck.ID}
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		first, later models.CardStatus
		wantLearned  int
	}{
		{name: "forgot then easy learns", first: models.StatusForgot, later: models.StatusEasy, wantLearned: 1},
		{name: "easy then forgot demotes", first: models.StatusEasy, later: models.StatusForgot, wantLearned: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes := []models.CardOutcome{
				{CardID: card.ID, Status: tt.first, RecordedAt: at},
				{CardID: card.ID, Status: tt.later, RecordedAt: at.Add(time.Hour)},
			}
			progress := ComputeDeckProgress(deck, []models.Card{card}, outcomes, DefaultPolicy())
			if progress.CardsLearned != tt.wantLearned {
				t.Errorf("CardsLearned = %d, want %d", progress.CardsLearned, tt.wantLearned)
			}
		})
	}
}

func TestDeckProgressCustomPolicy(t *testing.T) {
	deck := models.Deck{ID: uuid.New()}
	card := models.Card{ID: uuid.New(), DeckID: deck.ID}
	outcomes := []models.CardOutcome{
		{CardID: card.ID, Status: models.StatusMedium, RecordedAt: time.Now()},
	}

	lenient := Policy{LearnedStatuses: []models.CardStatus{models.StatusEasy, models.StatusMedium}}
	progress := ComputeDeckProgress(deck, []models.Card{card}, outcomes, lenient)
	if progress.CardsLearned != 1 {
		t.Errorf("CardsLearned = %d under lenient policy, want 1", progress.CardsLearned)
	}
}

func TestDeckProgressEmptyDeck(t *testing.T) {
	progress := ComputeDeckProgress(models.Deck{ID: uuid.New()}, nil, nil, DefaultPolicy())
	if progress.MasteryPercentage != 0 {
		t.Errorf("MasteryPercentage = %v for empty deck, want 0", progress.MasteryPercentage)
	}
	if progress.LastStudied != nil {
		t.Errorf("LastStudied = %v for empty deck, want nil", progress.LastStudied)
	}
}

func TestComputeCardPerformance(t *testing.T) {
	session := models.StudySession{ID: uuid.New(), DeckID: uuid.New()}
	hard := models.Card{ID: uuid.New(), Front: "hard card"}
	okay := models.Card{ID: uuid.New(), Front: "okay card"}
	unstudied := models.Card{ID: uuid.New(), Front: "never seen"}
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	outcomes := []models.CardOutcome{
		{SessionID: session.ID, CardID: hard.ID, IsCorrect: false, ResponseTimeMs: ms(4000), RecordedAt: at},
		{SessionID: session.ID, CardID: hard.ID, IsCorrect: false, ResponseTimeMs: ms(6000), RecordedAt: at.Add(time.Minute)},
		{SessionID: session.ID, CardID: okay.ID, IsCorrect: true, RecordedAt: at},
		{SessionID: session.ID, CardID: okay.ID, IsCorrect: false, RecordedAt: at.Add(time.Minute)},
	}

	perf := ComputeCardPerformance(
		[]models.Card{hard, okay, unstudied},
		outcomes,
		[]models.StudySession{session},
		Filter{}, 10,
	)
	if len(perf) != 2 {
		t.Fatalf("got %d performance rows, want 2 (unstudied cards omitted)", len(perf))
	}
	// Worst accuracy ranks first.
	if perf[0].CardID != hard.ID {
		t.Errorf("first row = %q, want the all-wrong card", perf[0].Front)
	}
	if perf[0].AccuracyRate != 0 || perf[0].DifficultyScore != 1 {
		t.Errorf("hard card accuracy/difficulty = %v/%v, want 0/1", perf[0].AccuracyRate, perf[0].DifficultyScore)
	}
	if perf[0].AverageResponseTimeMs == nil || *perf[0].AverageResponseTimeMs != 5000 {
		t.Errorf("AverageResponseTimeMs = %v, want 5000", perf[0].AverageResponseTimeMs)
	}
	if perf[1].AccuracyRate != 0.5 {
		t.Errorf("okay card AccuracyRate = %v, want 0.5", perf[1].AccuracyRate)
	}
	if perf[1].AverageResponseTimeMs != nil {
		t.Errorf("untimed card has AverageResponseTimeMs = %v, want nil", *perf[1].AverageResponseTimeMs)
	}
}

func TestCardPerformanceLimit(t *testing.T) {
	session := models.StudySession{ID: uuid.New(), DeckID: uuid.New()}
	var cards []models.Card
	var outcomes []models.CardOutcome
	for i := 0; i < 5; i++ {
		card := models.Card{ID: uuid.New()}
		cards = append(cards, card)
		outcomes = append(outcomes, models.CardOutcome{
			SessionID: session.ID, CardID: card.ID, IsCorrect: i%2 == 0, RecordedAt: time.Now(),
		})
	}

	perf := ComputeCardPerformance(cards, outcomes, []models.StudySession{session}, Filter{}, 2)
	if len(perf) != 2 {
		t.Errorf("got %d rows with limit 2, want 2", len(perf))
	}
}
