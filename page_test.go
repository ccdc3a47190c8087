package storefront_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/checkout"
	"github.com/dmitrymomot/storefront/pkg/credentials"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/storage"
	"github.com/dmitrymomot/storefront/pkg/validator"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func testConfig() storefront.Config {
	cfg := storefront.DefaultConfig()
	cfg.Credentials.BcryptCost = 4
	cfg.Activity.Interval = time.Hour
	return cfg
}

func newPage(t *testing.T, store storage.Store, clk *clock, opts ...storefront.Option) *storefront.Page {
	t.Helper()
	opts = append([]storefront.Option{storefront.WithClock(clk.Now)}, opts...)
	p, err := storefront.New(testConfig(), store, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

var juan = validator.SignupForm{Name: "Juan", Email: "Juan@Example.com", Password: "kape123"}

func TestPage_SignupAndAuthState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	p := newPage(t, store, newClock())

	assert.False(t, p.Load(ctx).LoggedIn)

	state, err := p.Signup(ctx, juan)
	require.NoError(t, err)
	assert.True(t, state.LoggedIn)
	assert.Equal(t, "Juan@Example.com", state.Email)
	assert.Equal(t, "Hi, Juan", state.Greeting)
	assert.True(t, p.Running())

	marker, ok, err := store.Get(ctx, storage.KeyCurrentUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Juan@Example.com", marker)

	_, err = p.Signup(ctx, validator.SignupForm{Name: "Other", Email: "juan@example.COM", Password: "kape123"})
	assert.ErrorIs(t, err, credentials.ErrDuplicateAccount)
	assert.Equal(t, storefront.MsgDuplicateAccount, storefront.Message(err))
}

func TestPage_SignupValidation(t *testing.T) {
	t.Parallel()
	p := newPage(t, nil, newClock())

	_, err := p.Signup(context.Background(), validator.SignupForm{Name: "J", Email: "juan@example.com", Password: "kape123"})
	require.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.Equal(t,
		"Name must be 2-100 characters (letters, spaces, hyphens, apostrophes only).",
		storefront.Message(err),
	)
	assert.False(t, p.AuthState(context.Background()).LoggedIn)
}

func TestPage_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := newPage(t, store, newClock())
	_, err := first.Signup(ctx, juan)
	require.NoError(t, err)
	require.NoError(t, first.Logout(ctx))
	assert.False(t, first.Running())

	p := newPage(t, store, newClock())
	p.Load(ctx)

	t.Run("wrong password", func(t *testing.T) {
		_, err := p.Login(ctx, validator.LoginForm{Email: "juan@example.com", Password: "wrong12"})
		assert.ErrorIs(t, err, credentials.ErrInvalidCredentials)
		assert.Equal(t, storefront.MsgInvalidCredentials, storefront.Message(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := p.Login(ctx, validator.LoginForm{Email: "maria@example.com", Password: "kape123"})
		assert.Equal(t, storefront.MsgInvalidCredentials, storefront.Message(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := p.Login(ctx, validator.LoginForm{Email: "juan@example.com"})
		assert.Equal(t, "Please enter both email and password.", storefront.Message(err))
	})

	t.Run("any casing logs in as the registered address", func(t *testing.T) {
		state, err := p.Login(ctx, validator.LoginForm{Email: "JUAN@example.com", Password: "kape123"})
		require.NoError(t, err)
		assert.Equal(t, "Juan@Example.com", state.Email)
		assert.True(t, p.Running())
	})
}

func TestPage_LegacyAccountDisplayName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyAccounts, `{"Ana@Example.com":{"password":"secret1"}}`))

	cfg := testConfig()
	cfg.Credentials.Plaintext = true
	p, err := storefront.New(cfg, store)
	require.NoError(t, err)
	defer p.Close()

	state, err := p.Login(ctx, validator.LoginForm{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana@Example.com", state.Email)
	assert.Equal(t, "Ana", state.DisplayName)
	assert.Equal(t, "Hi, Ana", state.Greeting)
}

func TestPage_AddToCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newPage(t, nil, newClock())

	_, err := p.AddToCart(ctx, "Latte", "M")
	require.ErrorIs(t, err, storefront.ErrLoginRequired)
	assert.Equal(t, storefront.MsgLoginRequired, storefront.Message(err))
	assert.Zero(t, p.Cart().Len())

	_, err = p.Signup(ctx, juan)
	require.NoError(t, err)

	total, err := p.AddToCart(ctx, "Latte", "M")
	require.NoError(t, err)
	assert.InDelta(t, 120.0, total, 0.001)

	total, err = p.AddToCart(ctx, "latte", "m")
	require.NoError(t, err)
	assert.InDelta(t, 240.0, total, 0.001)
	assert.Equal(t, 1, p.Cart().Len())
	assert.Equal(t, 2, p.Cart().Count())

	_, err = p.AddToCart(ctx, "Latte", "XL")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	assert.Equal(t, storefront.MsgProductNotFound, storefront.Message(err))
}

func TestPage_LogoutClearsCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	p := newPage(t, store, newClock())

	_, err := p.Signup(ctx, juan)
	require.NoError(t, err)
	_, err = p.AddToCart(ctx, "Mocha", "L")
	require.NoError(t, err)

	require.NoError(t, p.Logout(ctx))
	assert.False(t, p.AuthState(ctx).LoggedIn)
	assert.False(t, p.Running())
	assert.Zero(t, p.Cart().Len())

	snap := store.Snapshot()
	for _, key := range []string{storage.KeySession, storage.KeyCurrentUser, storage.KeyCart, storage.KeyCartTotal} {
		assert.NotContains(t, snap, key)
	}
	assert.Contains(t, snap, storage.KeyAccounts)
}

func TestPage_LoadRestoresAcrossPages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clk := newClock()

	first := newPage(t, store, clk)
	_, err := first.Signup(ctx, juan)
	require.NoError(t, err)
	_, err = first.AddToCart(ctx, "Americano", "S")
	require.NoError(t, err)
	first.Close()

	clk.Advance(10 * time.Minute)
	second := newPage(t, store, clk)
	state := second.Load(ctx)
	assert.True(t, state.LoggedIn)
	assert.True(t, second.Running())
	require.Equal(t, 1, second.Cart().Len())
	assert.Equal(t, "Americano", second.Cart().Items()[0].Name)
}

func TestPage_LoadReapsExpiredSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	clk := newClock()

	first := newPage(t, store, clk)
	_, err := first.Signup(ctx, juan)
	require.NoError(t, err)
	_, err = first.AddToCart(ctx, "Latte", "L")
	require.NoError(t, err)
	first.Close()

	clk.Advance(31 * time.Minute)
	second := newPage(t, store, clk)
	state := second.Load(ctx)
	assert.False(t, state.LoggedIn)
	assert.False(t, second.Running())
	assert.Zero(t, second.Cart().Len())

	snap := store.Snapshot()
	assert.NotContains(t, snap, storage.KeySession)
	assert.NotContains(t, snap, storage.KeyCart)
}

func TestPage_SignupRollsBackAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.NewMemoryStore(storage.WithFaults(func(op storage.Op, key string) error {
		if op == storage.OpSet && key == storage.KeyCurrentUser {
			return errors.New("quota exceeded")
		}
		return nil
	}))
	p := newPage(t, store, newClock())

	_, err := p.Signup(ctx, juan)
	require.ErrorIs(t, err, session.ErrPersistFailed)
	assert.False(t, p.AuthState(ctx).LoggedIn)
	assert.False(t, p.Running())

	snap := store.Snapshot()
	assert.NotContains(t, snap, storage.KeySession)
	assert.JSONEq(t, `{}`, snap[storage.KeyAccounts])
}

func TestPage_Checkout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newPage(t, nil, newClock())

	_, err := p.Checkout(ctx)
	require.ErrorIs(t, err, checkout.ErrAuthenticationRequired)
	assert.Equal(t, storefront.MsgCheckoutBlocked, storefront.Message(err))

	_, err = p.Signup(ctx, juan)
	require.NoError(t, err)

	_, err = p.Checkout(ctx)
	assert.ErrorIs(t, err, checkout.ErrEmptyCart)

	_, err = p.AddToCart(ctx, "Cappuccino", "M")
	require.NoError(t, err)

	summary, err := p.Checkout(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 125.0, summary.Subtotal, 0.001)
	assert.InDelta(t, 175.0, summary.GrandTotal, 0.001)

	conf, err := p.PlaceOrder(ctx, checkout.OrderForm{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Email:     "juan@example.com",
		Phone:     "0917 123 4567",
		Address:   "123 Rizal Street",
		City:      "Manila",
		Zip:       "1000",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, conf.Reference, 10000)
	assert.LessOrEqual(t, conf.Reference, 99999)
	assert.Equal(t, "cash_on_delivery", conf.PaymentMethod)
	assert.Zero(t, p.Cart().Len())
}

func TestPage_SubmitFeedback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newPage(t, nil, newClock())

	form, err := p.SubmitFeedback(ctx, validator.FeedbackForm{
		Name:    "Maria <b>Santos</b>",
		Email:   "maria@example.com",
		Subject: "Great coffee",
		Message: "The caramel macchiato was excellent.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", form.Name)

	_, err = p.SubmitFeedback(ctx, validator.FeedbackForm{Name: "Maria", Email: "maria@example.com", Subject: "Hi", Message: "Too short"})
	require.Error(t, err)
	assert.Equal(t, "Subject must be 5-200 characters with no HTML tags.", storefront.Message(err))
}

func TestPage_HandleEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clk := newClock()
	p := newPage(t, nil, clk)

	res, err := p.HandleEvent(ctx, "click")
	require.NoError(t, err)
	assert.Equal(t, session.ActivityNone, res)

	_, err = p.Signup(ctx, juan)
	require.NoError(t, err)

	res, err = p.HandleEvent(ctx, "resize")
	require.NoError(t, err)
	assert.Equal(t, session.ActivityNone, res)

	res, err = p.HandleEvent(ctx, "keypress")
	require.NoError(t, err)
	assert.Equal(t, session.ActivityRefreshed, res)

	clk.Advance(31 * time.Minute)
	res, err = p.HandleEvent(ctx, "scroll")
	require.NoError(t, err)
	assert.Equal(t, session.ActivityExpired, res)
	assert.False(t, p.AuthState(ctx).LoggedIn)
	assert.False(t, p.Running())
}

func TestPage_Close(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := newPage(t, nil, newClock())

	p.Close()
	p.Close()

	_, err := p.Signup(ctx, juan)
	assert.ErrorIs(t, err, storefront.ErrPageClosed)
	_, err = p.Login(ctx, validator.LoginForm{Email: "juan@example.com", Password: "kape123"})
	assert.ErrorIs(t, err, storefront.ErrPageClosed)
}

func TestMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, storefront.Message(nil))
	assert.Equal(t, storefront.MsgSessionExpired, storefront.Message(session.ErrSessionExpired))
	assert.Equal(t, storefront.MsgGenericFailure, storefront.Message(errors.New("boom")))
	assert.Equal(t, storefront.MsgInvalidCredentials,
		storefront.Message(errors.Join(credentials.ErrInvalidCredentials, errors.New("detail"))))
}
