package study

import (
	"errors"
	"testing"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"

	"github.com/google/uuid"
)

func TestRecorderCorrectnessDerivation(t *testing.T) {
	tests := []struct {
		status      models.CardStatus
		wantCorrect bool
	}{
		{models.StatusEasy, true},
		{models.StatusMedium, true},
		{models.StatusHard, false},
		{models.StatusForgot, false},
	}

	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			sink := &memSink{}
			rec := NewRecorder(sink)
			outcome, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), tt.status, started, started.Add(time.Second), nil)
			if err != nil {
				t.Fatalf("Record() error: %v", err)
			}
			if outcome.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", outcome.IsCorrect, tt.wantCorrect)
			}
			if outcome.ResponseTimeMs == nil || *outcome.ResponseTimeMs != 1000 {
				t.Errorf("ResponseTimeMs = %v, want 1000", outcome.ResponseTimeMs)
			}
			if len(sink.outcomes) != 1 {
				t.Errorf("sink holds %d outcomes, want 1", len(sink.outcomes))
			}
		})
	}
}

func TestRecorderRejectsInvalidStatus(t *testing.T) {
	sink := &memSink{}
	rec := NewRecorder(sink)
	now := time.Now()

	for _, bad := range []models.CardStatus{"", "unknown", "EASY"} {
		if _, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), bad, now, now, nil); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("Record(%q) error = %v, want ErrInvalidStatus", bad, err)
		}
	}
	if len(sink.outcomes) != 0 {
		t.Errorf("rejected statuses still reached the sink: %d outcomes", len(sink.outcomes))
	}
}

func TestRecorderRejectsNegativeTiming(t *testing.T) {
	rec := NewRecorder(&memSink{})
	answered := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	started := answered.Add(time.Second)

	if _, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), models.StatusEasy, started, answered, nil); !errors.Is(err, ErrInvalidTiming) {
		t.Errorf("Record() with answer before start error = %v, want ErrInvalidTiming", err)
	}
}

func TestRecorderUntimedOutcome(t *testing.T) {
	rec := NewRecorder(&memSink{})

	outcome, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), models.StatusForgot, time.Time{}, time.Now(), nil)
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if outcome.ResponseTimeMs != nil {
		t.Errorf("untimed outcome has response time %d, want none", *outcome.ResponseTimeMs)
	}
}

func TestRecorderOptions(t *testing.T) {
	rec := NewRecorder(&memSink{})
	now := time.Now()

	answer := "la maison"
	wrong := false
	outcome, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), models.StatusEasy, now, now, &RecordOptions{
		UserAnswer: &answer,
		IsCorrect:  &wrong,
	})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if outcome.UserAnswer == nil || *outcome.UserAnswer != answer {
		t.Errorf("UserAnswer = %v, want %q", outcome.UserAnswer, answer)
	}
	if outcome.IsCorrect {
		t.Error("explicit IsCorrect=false was overridden by the status default")
	}
}

func TestRecorderSinkFailure(t *testing.T) {
	sinkErr := errors.New("connection reset")
	rec := NewRecorder(&memSink{err: sinkErr})
	now := time.Now()

	if _, err := rec.Record(uuid.New(), uuid.New(), uuid.New(), models.StatusEasy, now, now, nil); !errors.Is(err, sinkErr) {
		t.Errorf("Record() error = %v, want sink error", err)
	}
}
