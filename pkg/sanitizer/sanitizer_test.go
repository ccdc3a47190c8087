package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Ana Lopez", "Ana Lopez"},
		{"empty", "", ""},
		{"trims", "  Ana  ", "Ana"},
		{"strips tags", "<b>Ana</b>", "Ana"},
		{"strips script tags", "<script>alert(1)</script>Ana", "alert(1)Ana"},
		{"strips javascript protocol", "JavaScript:alert(1)", "alert(1)"},
		{"strips event handlers", "x onClick =alert(1)", "x alert(1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeInput(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ana@example.com", sanitizer.NormalizeEmail("  Ana@Example.COM "))
	assert.Equal(t,
		sanitizer.NormalizeEmail("ÉLODIE@example.com"),
		sanitizer.NormalizeEmail("élodie@example.com"),
	)
	assert.Equal(t, "", sanitizer.NormalizeEmail("   "))
}

func TestLocalPart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ana", sanitizer.LocalPart("Ana@example.com"))
	assert.Equal(t, "noat", sanitizer.LocalPart(" noat "))
	assert.Equal(t, "", sanitizer.LocalPart("@example.com"))
}
