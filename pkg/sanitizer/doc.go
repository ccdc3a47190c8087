// Package sanitizer cleans user-supplied text before it is validated or
// persisted.
//
// SanitizeInput removes markup and inline script vectors from free text:
// HTML tags, "javascript:" protocol prefixes and on<event>= handler
// attributes. The result is trimmed.
//
//	sanitizer.SanitizeInput(`<b>Ana</b> onclick=alert(1)`) // "Ana alert(1)"
//
// NormalizeEmail produces the case-insensitive lookup key used by the
// credential store. It folds Unicode case with golang.org/x/text/cases, so
// addresses that differ only in case (including non-ASCII letters) map to the
// same key. LocalPart returns the part of an address before "@", used as a
// fallback display name.
package sanitizer
