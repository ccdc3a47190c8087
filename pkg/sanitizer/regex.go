package sanitizer

import "regexp"

var (
	htmlTagRegex      = regexp.MustCompile(`<[^>]*>`)
	jsProtocolRegex   = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=`)
)
