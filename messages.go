package storefront

import (
	"errors"

	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/credentials"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// Messages shown to the shopper.
const (
	MsgLoginSuccess       = "Login successful! Redirecting…"
	MsgSignupSuccess      = "Account created! Redirecting…"
	MsgFeedbackSent       = "Thank you! Your feedback has been sent."
	MsgInvalidCredentials = "Invalid email or password. Please try again."
	MsgDuplicateAccount   = "This email is already registered. Please log in."
	MsgLoginRequired      = "You need to sign up or log in before adding to cart."
	MsgCheckoutBlocked    = "Please log in and add items to your cart before checking out."
	MsgSessionExpired     = "Your session has expired due to inactivity. Please log in again."
	MsgProductNotFound    = "Sorry, that item is not on the menu."
	MsgNoSuchCartLine     = "That item is not in your cart."
	MsgInvalidQuantity    = "Quantity must be at least 1."
	MsgLogoutConfirm      = "Are you sure you want to logout? Your cart will be cleared."
	MsgGenericFailure     = "Something went wrong. Please try again."
)

// Message returns the text shown for err. Validation failures report their
// first message; account failures never reveal which field was wrong.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return verrs.First()
	}

	switch {
	case errors.Is(err, credentials.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, credentials.ErrDuplicateAccount):
		return MsgDuplicateAccount
	case errors.Is(err, ErrLoginRequired):
		return MsgLoginRequired
	case errors.Is(err, checkout.ErrAuthenticationRequired), errors.Is(err, checkout.ErrEmptyCart):
		return MsgCheckoutBlocked
	case errors.Is(err, session.ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, catalog.ErrProductNotFound):
		return MsgProductNotFound
	case errors.Is(err, cart.ErrIndexOutOfRange):
		return MsgNoSuchCartLine
	case errors.Is(err, cart.ErrInvalidQuantity):
		return MsgInvalidQuantity
	}
	return MsgGenericFailure
}
