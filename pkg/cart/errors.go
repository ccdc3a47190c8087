package cart

import "errors"

var (
	// ErrIndexOutOfRange is returned for a position that holds no line item.
	ErrIndexOutOfRange = errors.New("cart.index_out_of_range")

	// ErrInvalidQuantity is returned when setting a quantity below one.
	ErrInvalidQuantity = errors.New("cart.invalid_quantity")

	// ErrInvalidProduct is returned when adding a product without a name or with a bad price.
	ErrInvalidProduct = errors.New("cart.invalid_product")
)
