package utils

import (
	"net/mail"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// IsValidEmail reports whether addr is a plausible account address: it
// must parse as a bare RFC 5322 address and carry a dotted domain.
func IsValidEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return false
	}
	domain := addr[strings.LastIndex(addr, "@")+1:]
	return strings.Contains(domain, ".")
}

// IsComplexPassword enforces the account password policy: at least
// minPasswordLength bytes spanning upper, lower, digit, and symbol
// runes. Registration and password changes both go through this.
func IsComplexPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
