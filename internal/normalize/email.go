package normalize

import (
	"regexp"
	"strings"

	"devevents/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the trimmed value looks like local@domain.tld.
func IsValidEmail(value string) bool {
	return emailRegex.MatchString(strings.TrimSpace(value))
}

// Email returns the trimmed, lower-cased address or an InvalidEmail error.
func Email(value string) (string, error) {
	if !IsValidEmail(value) {
		return "", domain.InvalidEmail(value)
	}
	return strings.ToLower(strings.TrimSpace(value)), nil
}
