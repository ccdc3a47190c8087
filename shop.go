package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

// AddToCart adds one unit of the named menu item in the given size and
// returns the new cart total. It requires a logged-in user.
func (p *Page) AddToCart(ctx context.Context, name, size string) (float64, error) {
	if _, ok := p.sessions.CurrentSubject(ctx); !ok {
		return 0, ErrLoginRequired
	}

	product, ok := p.catalog.Find(name, size)
	if !ok {
		return 0, errors.Join(catalog.ErrProductNotFound, fmt.Errorf("%s (%s)", name, size))
	}
	return p.cart.Add(ctx, product)
}

// Checkout returns the order summary, or an error when the shopper is not
// logged in or the cart is empty.
func (p *Page) Checkout(ctx context.Context) (*checkout.Summary, error) {
	return p.checkout.Enter(ctx)
}

// PlaceOrder submits the delivery form and empties the cart on success.
func (p *Page) PlaceOrder(ctx context.Context, form checkout.OrderForm) (*checkout.Confirmation, error) {
	return p.checkout.PlaceOrder(ctx, form)
}

// SubmitFeedback counts as activity for a logged-in user and validates the
// contact form. Feedback does not require a session.
func (p *Page) SubmitFeedback(ctx context.Context, form validator.FeedbackForm) (validator.FeedbackForm, error) {
	if err := p.sessions.Refresh(ctx); err != nil && !errors.Is(err, session.ErrSessionExpired) {
		p.logger.WarnContext(ctx, "session activity not recorded", logger.Error(err))
	}

	form, err := validator.Feedback(form)
	if err != nil {
		return form, err
	}
	p.logger.InfoContext(ctx, "feedback accepted", logger.Event("feedback"))
	return form, nil
}
