package checkout

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

const (
	minReference = 10000
	maxReference = 99999
)

// Sessions is the part of the session manager the gate needs.
type Sessions interface {
	CurrentSubject(ctx context.Context) (string, bool)
	Refresh(ctx context.Context) error
}

// Cart is the part of the cart manager the gate needs.
type Cart interface {
	Items() []cart.LineItem
	Clear(ctx context.Context)
}

// OrderForm holds the delivery details entered at checkout.
type OrderForm = validator.CheckoutForm

// Summary is what the checkout page shows before the order is placed.
type Summary struct {
	Subject string
	// Currency is the symbol amounts are shown with.
	Currency    string
	Items       []cart.LineItem
	Subtotal    float64
	DeliveryFee float64
	GrandTotal  float64
}

// Confirmation acknowledges a placed order.
type Confirmation struct {
	ID uuid.UUID
	// Reference is the 5-digit number shown to the shopper.
	Reference     int
	PlacedAt      time.Time
	PaymentMethod string
	Delivery      OrderForm
	Summary
}

// Option configures a Gate.
type Option func(*Gate)

func WithConfig(cfg Config) Option {
	return func(g *Gate) {
		g.config = cfg
	}
}

func WithDeliveryFee(fee float64) Option {
	return func(g *Gate) {
		g.config.DeliveryFee = fee
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		if now != nil {
			g.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// Gate guards order placement.
type Gate struct {
	sessions Sessions
	cart     Cart
	config   Config
	now      func() time.Time
	logger   *slog.Logger
}

// New creates a checkout gate.
func New(sessions Sessions, c Cart, opts ...Option) (*Gate, error) {
	if sessions == nil || c == nil {
		return nil, ErrMissingDependency
	}

	g := &Gate{
		sessions: sessions,
		cart:     c,
		config:   DefaultConfig(),
		now:      time.Now,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("checkout"))
	return g, nil
}

// Config returns the gate configuration.
func (g *Gate) Config() Config {
	return g.config
}

// Enter checks the page may be shown and returns the order summary.
func (g *Gate) Enter(ctx context.Context) (*Summary, error) {
	subject, ok := g.sessions.CurrentSubject(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}
	items := g.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	return g.summarize(subject, items), nil
}

// PlaceOrder validates the order, refreshes the session and clears the cart.
func (g *Gate) PlaceOrder(ctx context.Context, form OrderForm) (*Confirmation, error) {
	subject, ok := g.sessions.CurrentSubject(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	items := g.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	form, err := validator.Checkout(form)
	if err != nil {
		return nil, err
	}

	if err := g.sessions.Refresh(ctx); err != nil {
		if errors.Is(err, session.ErrSessionExpired) {
			return nil, ErrAuthenticationRequired
		}
		g.logger.WarnContext(ctx, "session refresh failed during checkout", logger.Subject(subject), logger.Error(err))
	}

	ref, err := reference()
	if err != nil {
		return nil, err
	}

	payment := form.PaymentMethod
	if payment == "" {
		payment = g.config.DefaultPaymentMethod
	}

	conf := &Confirmation{
		ID:            uuid.New(),
		Reference:     ref,
		PlacedAt:      g.now(),
		PaymentMethod: payment,
		Delivery:      form,
		Summary:       *g.summarize(subject, items),
	}

	g.cart.Clear(ctx)

	g.logger.InfoContext(ctx, "order placed",
		logger.Subject(subject),
		slog.Int("reference", conf.Reference),
		slog.String("order_id", conf.ID.String()),
		slog.Int("lines", len(items)),
	)
	return conf, nil
}

func (g *Gate) summarize(subject string, items []cart.LineItem) *Summary {
	var subtotal float64
	for _, li := range items {
		subtotal += li.Subtotal()
	}
	return &Summary{
		Subject:     subject,
		Currency:    g.config.Currency,
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: g.config.DeliveryFee,
		GrandTotal:  subtotal + g.config.DeliveryFee,
	}
}

// reference returns a uniformly random number in [10000, 99999].
func reference() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxReference-minReference+1))
	if err != nil {
		return 0, errors.Join(ErrReferenceGeneration, err)
	}
	return minReference + int(n.Int64()), nil
}
