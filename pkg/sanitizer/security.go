package sanitizer

import "strings"

// SanitizeInput strips HTML tags, javascript: prefixes and inline event
// handler attributes, then trims surrounding whitespace.
func SanitizeInput(s string) string {
	if s == "" {
		return s
	}
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = jsProtocolRegex.ReplaceAllString(s, "")
	s = eventHandlerRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
