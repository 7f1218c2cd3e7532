package models

import "testing"

func TestCardStatusValid(t *testing.T) {
	for _, status := range []CardStatus{StatusEasy, StatusMedium, StatusHard, StatusForgot} {
		if !status.Valid() {
			t.Errorf("%s.Valid() = false, want true", status)
		}
	}
	for _, status := range []CardStatus{"", "Easy", "EASY", "ok", "skipped"} {
		if status.Valid() {
			t.Errorf("%q.Valid() = true, want false", status)
		}
	}
}

func TestCardStatusCorrect(t *testing.T) {
	tests := []struct {
		status CardStatus
		want   bool
	}{
		{StatusEasy, true},
		{StatusMedium, true},
		{StatusHard, false},
		{StatusForgot, false},
	}
	for _, tt := range tests {
		if got := tt.status.Correct(); got != tt.want {
			t.Errorf("%s.Correct() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
