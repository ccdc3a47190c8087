package checkout

// Config holds checkout configuration.
type Config struct {
	// DeliveryFee is added to every order.
	DeliveryFee float64 `env:"CHECKOUT_DELIVERY_FEE" envDefault:"50"`
	// Currency is the symbol shown next to amounts.
	Currency string `env:"CHECKOUT_CURRENCY" envDefault:"₱"`
	// DefaultPaymentMethod is used when the form leaves it empty.
	DefaultPaymentMethod string `env:"CHECKOUT_DEFAULT_PAYMENT_METHOD" envDefault:"cash_on_delivery"`
}

// DefaultConfig returns default checkout configuration.
func DefaultConfig() Config {
	return Config{
		DeliveryFee:          50,
		Currency:             "₱",
		DefaultPaymentMethod: "cash_on_delivery",
	}
}
