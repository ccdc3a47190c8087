package storefront

import "errors"

var (
	// ErrLoginRequired is returned when adding to the cart without a session.
	ErrLoginRequired = errors.New("storefront.login_required")

	// ErrUnknownDriver is returned by OpenStore for an unsupported driver.
	ErrUnknownDriver = errors.New("storefront.unknown_storage_driver")

	// ErrPageClosed is returned by flows invoked after Close.
	ErrPageClosed = errors.New("storefront.page_closed")
)
