package utils

import (
	"regexp"
	"strings"
)

// Free-text fields are capped well above any field-level limit so the
// length validators, not the sanitizer, decide what is "too long".
const sanitizeMaxLen = 1000

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	jsURIRe        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRe = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizeInput normalizes free-text input before validation and
// persistence: trims surrounding whitespace, strips script blocks,
// javascript: URI prefixes and inline event-handler patterns, and caps
// the result at 1000 characters. Idempotent, no side effects.
func SanitizeInput(s string) string {
	// Stripping can splice two halves of a pattern back together, so
	// repeat until nothing changes.
	for {
		next := scriptBlockRe.ReplaceAllString(s, "")
		next = jsURIRe.ReplaceAllString(next, "")
		next = eventHandlerRe.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > sanitizeMaxLen {
		s = strings.TrimSpace(string(runes[:sanitizeMaxLen]))
	}
	return s
}
