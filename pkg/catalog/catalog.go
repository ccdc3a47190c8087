package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

//go:embed default.yaml
var defaultYAML []byte

// Variant is one size of a product.
type Variant struct {
	Size  string  `yaml:"size"`
	Price float64 `yaml:"price"`
}

// Item is a product on the menu.
type Item struct {
	Name        string    `yaml:"name"`
	Image       string    `yaml:"image"`
	Description string    `yaml:"description,omitempty"`
	Variants    []Variant `yaml:"variants"`
}

// Catalog is the full menu.
type Catalog struct {
	Currency string `yaml:"currency"`
	Items    []Item `yaml:"items"`
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded menu.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Find returns the product with the given name (case-insensitive) and size.
func (c *Catalog) Find(name, size string) (cart.Product, bool) {
	name = strings.TrimSpace(name)
	size = strings.TrimSpace(size)
	for _, it := range c.Items {
		if !strings.EqualFold(it.Name, name) {
			continue
		}
		for _, v := range it.Variants {
			if strings.EqualFold(v.Size, size) {
				return cart.Product{Name: it.Name, Price: v.Price, Size: v.Size, Image: it.Image}, true
			}
		}
	}
	return cart.Product{}, false
}

func (c *Catalog) validate() error {
	if len(c.Items) == 0 {
		return errors.Join(ErrInvalidCatalog, errors.New("no items"))
	}

	names := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if !validator.IsProductName(it.Name) {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("invalid product name %q", it.Name))
		}
		key := strings.ToLower(it.Name)
		if names[key] {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("duplicate product %q", it.Name))
		}
		names[key] = true

		if len(it.Variants) == 0 {
			return errors.Join(ErrInvalidCatalog, fmt.Errorf("product %q has no sizes", it.Name))
		}
		sizes := make(map[string]bool, len(it.Variants))
		for _, v := range it.Variants {
			s := strings.ToLower(strings.TrimSpace(v.Size))
			if s == "" || sizes[s] {
				return errors.Join(ErrInvalidCatalog, fmt.Errorf("product %q has a blank or duplicate size %q", it.Name, v.Size))
			}
			sizes[s] = true
			if !validator.IsPrice(strconv.FormatFloat(v.Price, 'f', -1, 64)) {
				return errors.Join(ErrInvalidCatalog, fmt.Errorf("product %q size %s has invalid price %v", it.Name, v.Size, v.Price))
			}
		}
	}
	return nil
}
