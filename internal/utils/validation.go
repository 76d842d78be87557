package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeString strips control characters and surrounding whitespace
// from free-text input.
func SanitizeString(input string) string {
	input = strings.Map(func(r rune) rune {
		switch r {
		case '\x00', '\r', '\n', '\t':
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(input)
}
