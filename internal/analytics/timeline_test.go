package analytics

import (
	"testing"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func TestComputeLearningCurve(t *testing.T) {
	session := models.StudySession{ID: uuid.New(), DeckID: uuid.New()}
	day := func(d, hour int) time.Time { return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC) }

	// Two outcomes on the 3rd, one on the 7th, nothing in between.
	outcomes := []models.CardOutcome{
		{SessionID: session.ID, IsCorrect: true, ResponseTimeMs: ms(60000), RecordedAt: day(3, 9)},
		{SessionID: session.ID, IsCorrect: false, ResponseTimeMs: ms(60000), RecordedAt: day(3, 21)},
		{SessionID: session.ID, IsCorrect: true, RecordedAt: day(7, 12)},
	}

	curve := ComputeLearningCurve(outcomes, []models.StudySession{session}, Filter{}, time.UTC)
	if len(curve) != 2 {
		t.Fatalf("got %d points, want 2 (sparse, no zero-fill)", len(curve))
	}
	if !curve[0].Date.Equal(day(3, 0)) || !curve[1].Date.Equal(day(7, 0)) {
		t.Errorf("dates = %v, %v, want Mar 3 then Mar 7", curve[0].Date, curve[1].Date)
	}
	if curve[0].CardsStudied != 2 || curve[0].Accuracy != 50 || curve[0].StudyTimeMinutes != 2 {
		t.Errorf("Mar 3 point = %+v, want 2 cards, 50%% accuracy, 2 minutes", curve[0])
	}
	if curve[1].CardsStudied != 1 || curve[1].Accuracy != 100 {
		t.Errorf("Mar 7 point = %+v, want 1 card at 100%%", curve[1])
	}
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to monday",
			in:   time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to previous monday",
			in:   time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStartOf(tt.in, time.UTC); !got.Equal(tt.want) {
				t.Errorf("weekStartOf(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestComputeWeeklyProgress(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) // Wednesday
	done := now.Add(time.Hour)
	finished := models.StudySession{ID: uuid.New(), DeckID: uuid.New(), CompletedAt: &done}
	abandoned := models.StudySession{ID: uuid.New(), DeckID: finished.DeckID}
	sessions := []models.StudySession{finished, abandoned}

	outcomes := []models.CardOutcome{
		{SessionID: finished.ID, IsCorrect: true, RecordedAt: now},
		{SessionID: abandoned.ID, IsCorrect: false, RecordedAt: now},
		// A second calendar week.
		{SessionID: finished.ID, IsCorrect: true, RecordedAt: now.AddDate(0, 0, 7)},
	}

	weekly := ComputeWeeklyProgress(outcomes, sessions, Filter{}, time.UTC)
	if len(weekly) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weekly))
	}
	first := weekly[0]
	if first.TotalCardsStudied != 2 {
		t.Errorf("week 1 TotalCardsStudied = %d, want 2", first.TotalCardsStudied)
	}
	if first.AverageAccuracy != 50 {
		t.Errorf("week 1 AverageAccuracy = %v, want 50", first.AverageAccuracy)
	}
	// Only the finished session counts as completed.
	if first.SessionsCompleted != 1 {
		t.Errorf("week 1 SessionsCompleted = %d, want 1", first.SessionsCompleted)
	}
	if !weekly[0].WeekStart.Before(weekly[1].WeekStart) {
		t.Error("weeks not ordered ascending")
	}
}
