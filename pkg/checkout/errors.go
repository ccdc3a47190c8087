package checkout

import "errors"

var (
	// ErrAuthenticationRequired is returned when no valid session exists.
	ErrAuthenticationRequired = errors.New("checkout.authentication_required")

	// ErrEmptyCart is returned when the cart has no items.
	ErrEmptyCart = errors.New("checkout.empty_cart")

	// ErrReferenceGeneration indicates the order reference could not be generated.
	ErrReferenceGeneration = errors.New("checkout.reference_generation_failed")

	// ErrMissingDependency is returned when the gate is built without sessions or cart.
	ErrMissingDependency = errors.New("checkout.missing_dependency")
)
