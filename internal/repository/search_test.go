package repository

import "testing"

func TestLikePattern(t *testing.T) {
	tests := []struct {
		name string
		term string
		want string
	}{
		{name: "plain term", term: "kanji", want: "%kanji%"},
		{name: "percent escaped", term: "100%", want: `%100\%%`},
		{name: "underscore escaped", term: "a_b", want: `%a\_b%`},
		{name: "backslash escaped", term: `a\b`, want: `%a\\b%`},
		{name: "empty term", term: "", want: "%%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := likePattern(tt.term); got != tt.want {
				t.Errorf("likePattern(%q) = %q, want %q", tt.term, got, tt.want)
			}
		})
	}
}

func TestContainsFold(t *testing.T) {
	if !containsFold("French Vocab", "vocab") {
		t.Error("containsFold should match case-insensitively")
	}
	if containsFold("French Vocab", "kanji") {
		t.Error("containsFold matched an absent term")
	}
}
