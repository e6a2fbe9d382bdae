package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks email syntax. Used for per-item classification in bulk
// routes where a bad entry must be reported, not rejected wholesale.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// SameEmail compares two emails case-insensitively
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Dedupe removes duplicate ids while preserving order
func Dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

// Remove returns ids without any occurrence of the given value
func Remove(ids []string, value string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != value {
			result = append(result, id)
		}
	}
	return result
}
