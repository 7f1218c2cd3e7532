package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"no-at-sign.com", false},
		{"no-dot@example", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsComplexPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"meets all requirements", "Str0ng!pass", true},
		{"too short", "S7!a", false},
		{"no uppercase", "weak1pass!", false},
		{"no lowercase", "WEAK1PASS!", false},
		{"no digit", "Weakpass!!", false},
		{"no special character", "Weakpass11", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplexPassword(tt.password); got != tt.want {
				t.Errorf("IsComplexPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}
