package catalog

import "errors"

var (
	// ErrFailedToParseYAML is returned when the catalog is not valid YAML.
	ErrFailedToParseYAML = errors.New("catalog.failed_to_parse_yaml")

	// ErrInvalidCatalog is returned when the catalog content breaks a rule.
	ErrInvalidCatalog = errors.New("catalog.invalid")

	// ErrProductNotFound is returned when a name and size match no product.
	ErrProductNotFound = errors.New("catalog.product_not_found")
)
