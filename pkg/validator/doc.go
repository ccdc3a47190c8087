// Package validator holds the field rules and form validators used by every
// storefront form.
//
// Validation is declarative: each rule constructor returns a Rule that pairs a
// Check function with the ValidationError reported when it fails. Apply runs a
// list of rules and aggregates the failures into ValidationErrors, which
// implements error.
//
//	err := validator.Apply(
//		validator.Email("email", email),
//		validator.Password("password", password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		fmt.Println(verrs.First())
//	}
//
// Field rules mirror the storefront input contract: e-mail, password, person
// name, phone, address, product name, price, quantity, free text and ZIP code.
// The boolean helpers (IsEmail, IsName, ...) expose the same predicates for
// callers that only need a yes/no answer.
//
// Form validators (Signup, Login, Checkout, Feedback) trim and sanitize their
// input, validate every field and return the cleaned form together with any
// ValidationErrors. Messages are user-facing and are shown verbatim.
//
// The package is stateless and safe for concurrent use.
package validator
