package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex        = regexp.MustCompile(`^[a-zA-Z\s\-']{2,100}$`)
	phoneRegex       = regexp.MustCompile(`^[\d\s\-()+]{7,20}$`)
	productNameRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-()]{2,100}$`)
	priceRegex       = regexp.MustCompile(`^\d{1,5}(\.\d{1,2})?$`)
	zipRegex         = regexp.MustCompile(`^[a-zA-Z0-9\s\-]{3,10}$`)
)

const (
	maxEmailLength    = 254
	minPasswordLength = 6
	maxPasswordLength = 128
	minAddressLength  = 5
	maxAddressLength  = 500
	minQuantity       = 1
	maxQuantity       = 999
)

// IsEmail reports whether s is a plausible address of at most 254 characters
// with no angle brackets.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s) &&
		utf8.RuneCountInString(s) <= maxEmailLength &&
		!strings.ContainsAny(s, "<>")
}

// IsPassword reports whether s is 6-128 characters and free of ' " ; and \.
func IsPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minPasswordLength || n > maxPasswordLength {
		return false
	}
	return !strings.ContainsAny(s, `'";\`)
}

// IsName reports whether the sanitized s is 2-100 letters, spaces, hyphens or apostrophes.
func IsName(s string) bool {
	return nameRegex.MatchString(sanitizer.SanitizeInput(s))
}

func IsPhone(s string) bool {
	return phoneRegex.MatchString(sanitizer.SanitizeInput(s))
}

// IsAddress reports whether the sanitized s is 5-500 characters without < > { }.
func IsAddress(s string) bool {
	s = sanitizer.SanitizeInput(s)
	n := utf8.RuneCountInString(s)
	return n >= minAddressLength && n <= maxAddressLength && !strings.ContainsAny(s, "<>{}")
}

func IsProductName(s string) bool {
	return productNameRegex.MatchString(sanitizer.SanitizeInput(s))
}

// IsPrice reports whether s is a decimal with up to five integer digits and two decimals.
func IsPrice(s string) bool {
	return priceRegex.MatchString(s)
}

func IsQuantity(n int) bool {
	return n >= minQuantity && n <= maxQuantity
}

// IsText reports whether the sanitized s has between min and max characters
// and no script tags.
func IsText(s string, min, max int) bool {
	s = sanitizer.SanitizeInput(s)
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max &&
		!strings.Contains(s, "<script>") &&
		!strings.Contains(s, "</script>")
}

func IsZip(s string) bool {
	return zipRegex.MatchString(s)
}

func rule(field, code, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{Field: field, Message: message, Code: code},
	}
}

// Required fails when value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return rule(field, "validation.required", "field is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

func Email(field, value string) Rule {
	return rule(field, "validation.email", "Please enter a valid email address.", func() bool {
		return IsEmail(value)
	})
}

func Password(field, value string) Rule {
	return rule(field, "validation.password",
		`Password must be 6-128 characters and contain no special characters like ', ", ;, or \.`,
		func() bool { return IsPassword(value) })
}

func Name(field, value string) Rule {
	return rule(field, "validation.name",
		"Name must be 2-100 characters (letters, spaces, hyphens, apostrophes only).",
		func() bool { return IsName(value) })
}

func Phone(field, value string) Rule {
	return rule(field, "validation.phone",
		"Please enter a valid phone number (7-20 characters, digits, spaces, hyphens, +, parentheses).",
		func() bool { return IsPhone(value) })
}

func Address(field, value string) Rule {
	return rule(field, "validation.address",
		"Address must be 5-500 characters and contain no HTML tags.",
		func() bool { return IsAddress(value) })
}

func ProductName(field, value string) Rule {
	return rule(field, "validation.product_name",
		"Product name must be 2-100 characters (letters, digits, spaces, hyphens, parentheses).",
		func() bool { return IsProductName(value) })
}

func Price(field, value string) Rule {
	return rule(field, "validation.price",
		"Price must be a positive amount with at most 2 decimals.",
		func() bool { return IsPrice(value) })
}

func Quantity(field string, value int) Rule {
	return rule(field, "validation.quantity",
		fmt.Sprintf("Quantity must be between %d and %d.", minQuantity, maxQuantity),
		func() bool { return IsQuantity(value) })
}

// Text validates free-form text such as feedback subjects and messages.
func Text(field, value string, min, max int) Rule {
	return rule(field, "validation.text",
		fmt.Sprintf("must be %d-%d characters with no HTML tags", min, max),
		func() bool { return IsText(value, min, max) })
}

func Zip(field, value string) Rule {
	return rule(field, "validation.zip",
		"ZIP code must be 3-10 characters (alphanumeric, hyphens, spaces).",
		func() bool { return IsZip(value) })
}
