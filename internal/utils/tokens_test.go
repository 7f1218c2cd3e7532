package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken() error: %v", err)
	}
	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("token decodes to %d bytes, want 32", len(raw))
	}

	other, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("GenerateSecureToken() error: %v", err)
	}
	if token == other {
		t.Error("two generated tokens are identical")
	}
}
