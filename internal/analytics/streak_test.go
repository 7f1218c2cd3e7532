package analytics

import (
	"testing"
	"time"

	"github.com/devakalpa1/DeckOracle/internal/models"
)

func outcomesOnDays(days ...int) []models.CardOutcome {
	outcomes := make([]models.CardOutcome, 0, len(days))
	for _, d := range days {
		outcomes = append(outcomes, models.CardOutcome{
			RecordedAt: time.Date(2026, 3, d, 14, 30, 0, 0, time.UTC),
		})
	}
	return outcomes
}

func TestComputeStreaks(t *testing.T) {
	asOf := func(d int) time.Time { return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC) }

	tests := []struct {
		name        string
		days        []int
		asOf        time.Time
		wantCurrent int
		wantLongest int
	}{
		{
			name: "no history", days: nil, asOf: asOf(10),
			wantCurrent: 0, wantLongest: 0,
		},
		{
			name: "single day studied today", days: []int{10}, asOf: asOf(10),
			wantCurrent: 1, wantLongest: 1,
		},
		{
			name: "five day run evaluated same day", days: []int{5, 6, 7, 8, 9}, asOf: asOf(9),
			wantCurrent: 5, wantLongest: 5,
		},
		{
			name: "grace keeps streak one day later", days: []int{5, 6, 7, 8, 9}, asOf: asOf(10),
			wantCurrent: 5, wantLongest: 5,
		},
		{
			name: "two missed days break it", days: []int{5, 6, 7, 8, 9}, asOf: asOf(11),
			wantCurrent: 0, wantLongest: 5,
		},
		{
			name: "gap in history splits runs", days: []int{1, 2, 3, 8, 9}, asOf: asOf(9),
			wantCurrent: 2, wantLongest: 3,
		},
		{
			name: "multiple outcomes per day count once", days: []int{9, 9, 9, 10}, asOf: asOf(10),
			wantCurrent: 2, wantLongest: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ComputeStreaks(outcomesOnDays(tt.days...), tt.asOf, time.UTC, 1)
			if info.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", info.CurrentStreak, tt.wantCurrent)
			}
			if info.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", info.LongestStreak, tt.wantLongest)
			}
		})
	}
}

func TestComputeStreaksLastStudyDate(t *testing.T) {
	info := ComputeStreaks(outcomesOnDays(3, 5), time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), time.UTC, 1)
	want := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	if info.LastStudyDate == nil || !info.LastStudyDate.Equal(want) {
		t.Errorf("LastStudyDate = %v, want %v", info.LastStudyDate, want)
	}
	if info.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d long after last study, want 0", info.CurrentStreak)
	}
}

func TestComputeStreaksAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	tests := []struct {
		name string
		days []time.Time
		asOf time.Time
	}{
		{
			// 2026-03-08 is a 23-hour day in New York.
			name: "spring forward",
			days: []time.Time{
				time.Date(2026, 3, 8, 20, 0, 0, 0, loc),
				time.Date(2026, 3, 9, 20, 0, 0, 0, loc),
			},
			asOf: time.Date(2026, 3, 9, 22, 0, 0, 0, loc),
		},
		{
			// 2026-11-01 is a 25-hour day.
			name: "fall back",
			days: []time.Time{
				time.Date(2026, 11, 1, 20, 0, 0, 0, loc),
				time.Date(2026, 11, 2, 20, 0, 0, 0, loc),
			},
			asOf: time.Date(2026, 11, 2, 22, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes := make([]models.CardOutcome, len(tt.days))
			for i, d := range tt.days {
				outcomes[i] = models.CardOutcome{RecordedAt: d}
			}
			info := ComputeStreaks(outcomes, tt.asOf, loc, 1)
			if info.CurrentStreak != 2 || info.LongestStreak != 2 {
				t.Errorf("streaks = current:%d longest:%d, want 2/2", info.CurrentStreak, info.LongestStreak)
			}
		})
	}
}

func TestComputeStreaksGraceAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	// Last study the evening before the short day; one missed calendar
	// day is still within the default grace.
	outcomes := []models.CardOutcome{
		{RecordedAt: time.Date(2026, 3, 7, 21, 0, 0, 0, loc)},
	}
	info := ComputeStreaks(outcomes, time.Date(2026, 3, 8, 12, 0, 0, 0, loc), loc, 1)
	if info.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d one short day later, want 1", info.CurrentStreak)
	}
}

func TestComputeStreaksWiderGrace(t *testing.T) {
	days := outcomesOnDays(5, 6, 7)
	asOf := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	if got := ComputeStreaks(days, asOf, time.UTC, 1); got.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d with default grace, want 0", got.CurrentStreak)
	}
	if got := ComputeStreaks(days, asOf, time.UTC, 3); got.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d with 3-day grace, want 3", got.CurrentStreak)
	}
}
