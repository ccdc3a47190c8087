package validator

import (
	"strings"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

const (
	msgFillRequired  = "Please fill in all required fields."
	msgLoginRequired = "Please enter both email and password."
	msgInvalidEmail  = "Please enter a valid email address."
	msgNameRule      = "Name must be 2-100 characters (letters, spaces, hyphens, apostrophes only)."
)

// required reports every blank field with the same form-level message.
func required(message string, fields ...[2]string) ValidationErrors {
	var errs ValidationErrors
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			errs.Add(ValidationError{Field: f[0], Message: message, Code: "validation.required"})
		}
	}
	return errs
}

// LoginForm is the input of the login form.
type LoginForm struct {
	Email    string
	Password string
}

// Login trims the e-mail and checks that both fields are present and the
// address is well-formed. The password is passed through untouched.
func Login(in LoginForm) (LoginForm, error) {
	in.Email = strings.TrimSpace(in.Email)

	if errs := required(msgLoginRequired, [2]string{"email", in.Email}, [2]string{"password", in.Password}); !errs.IsEmpty() {
		return in, errs
	}

	return in, Apply(Email("email", in.Email))
}

// SignupForm is the input of the signup form.
type SignupForm struct {
	Name     string
	Email    string
	Password string
}

// Signup trims and sanitizes the input, then validates name, e-mail and password.
func Signup(in SignupForm) (SignupForm, error) {
	in.Name = sanitizer.SanitizeInput(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if errs := required(msgFillRequired,
		[2]string{"name", in.Name},
		[2]string{"email", in.Email},
		[2]string{"password", in.Password},
	); !errs.IsEmpty() {
		return in, errs
	}

	return in, Apply(
		Name("name", in.Name),
		Email("email", in.Email),
		Password("password", in.Password),
	)
}

// CheckoutForm holds the delivery details collected at checkout.
type CheckoutForm struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Zip           string
	PaymentMethod string
}

// Checkout sanitizes every field and validates the delivery details.
func Checkout(in CheckoutForm) (CheckoutForm, error) {
	in.FirstName = sanitizer.SanitizeInput(in.FirstName)
	in.LastName = sanitizer.SanitizeInput(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = sanitizer.SanitizeInput(in.Address)
	in.City = sanitizer.SanitizeInput(in.City)
	in.Zip = sanitizer.SanitizeInput(in.Zip)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)

	if errs := required(msgFillRequired,
		[2]string{"first_name", in.FirstName},
		[2]string{"last_name", in.LastName},
		[2]string{"email", in.Email},
		[2]string{"phone", in.Phone},
		[2]string{"address", in.Address},
		[2]string{"city", in.City},
		[2]string{"zip", in.Zip},
	); !errs.IsEmpty() {
		return in, errs
	}

	return in, Apply(
		Name("first_name", in.FirstName).
			WithMessage("First name must be 2-100 characters (letters, spaces, hyphens, apostrophes only)."),
		Name("last_name", in.LastName).
			WithMessage("Last name must be 2-100 characters (letters, spaces, hyphens, apostrophes only)."),
		Email("email", in.Email),
		Phone("phone", in.Phone),
		Address("address", in.Address),
		Name("city", in.City).WithMessage("City must be 2-100 characters (letters only)."),
		Zip("zip", in.Zip),
	)
}

// FeedbackForm is the input of the contact page form.
type FeedbackForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Feedback sanitizes and validates a contact form submission.
func Feedback(in FeedbackForm) (FeedbackForm, error) {
	in.Name = sanitizer.SanitizeInput(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = sanitizer.SanitizeInput(in.Subject)
	in.Message = sanitizer.SanitizeInput(in.Message)

	if errs := required(msgFillRequired,
		[2]string{"name", in.Name},
		[2]string{"email", in.Email},
		[2]string{"subject", in.Subject},
		[2]string{"message", in.Message},
	); !errs.IsEmpty() {
		return in, errs
	}

	return in, Apply(
		Name("name", in.Name).WithMessage(msgNameRule),
		Email("email", in.Email).WithMessage(msgInvalidEmail),
		Text("subject", in.Subject, 5, 200).
			WithMessage("Subject must be 5-200 characters with no HTML tags."),
		Text("message", in.Message, 10, 1000).
			WithMessage("Message must be 10-1000 characters with no HTML tags."),
	)
}
