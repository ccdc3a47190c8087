package cart

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// LineItem is one product and size with its quantity.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"img"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

func (li LineItem) matches(p Product) bool {
	return li.Name == p.Name && li.Size == p.Size
}

// Product is what the shopper adds to the cart.
type Product struct {
	Name  string
	Price float64
	Size  string
	Image string
}

// Validate checks the name is set and the price is a non-negative amount
// with at most two decimals.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Join(ErrInvalidProduct, errors.New("name is required"))
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) || p.Price < 0 {
		return errors.Join(ErrInvalidProduct, fmt.Errorf("price %v is not a non-negative amount", p.Price))
	}
	cents := p.Price * 100
	if math.Abs(cents-math.Round(cents)) > 1e-6 {
		return errors.Join(ErrInvalidProduct, fmt.Errorf("price %v has more than two decimals", p.Price))
	}
	return nil
}

// FormatAmount renders a currency amount with two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", math.Round(v*100)/100)
}
