// Package checkout enforces the precondition protocol that guards order
// placement.
//
// Gate.Enter is the page-access check: it requires a valid session and a
// non-empty cart and returns the order summary (lines, subtotal, delivery fee
// and grand total).
//
// Gate.PlaceOrder re-checks, in order:
//
//  1. the session is valid, else ErrAuthenticationRequired;
//  2. the cart has at least one line, else ErrEmptyCart;
//  3. every delivery field passes validator.Checkout, else the
//     validator.ValidationErrors are returned.
//
// Only then is the session refreshed (placing an order counts as activity),
// the cart snapshotted into a Confirmation carrying a random 5-digit
// reference and a UUID, and the cart cleared.
package checkout
