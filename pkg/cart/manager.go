package cart

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Option configures a Manager.
type Option func(*Manager)

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Manager owns the cart of one page lifetime.
type Manager struct {
	mu     sync.Mutex
	store  storage.Store
	logger *slog.Logger
	items  []LineItem
}

// New creates an empty cart backed by store. Call Hydrate to load persisted items.
func New(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = storage.NewMemoryStore()
	}
	m.logger = m.logger.With(logger.Component("cart"))
	return m
}

// Hydrate replaces the in-memory cart with the persisted one. Absent,
// unreadable or corrupt data yields an empty cart. Lines with a quantity
// below one or no name are dropped.
func (m *Manager) Hydrate(ctx context.Context) {
	var items []LineItem
	if _, err := storage.GetJSON(ctx, m.store, storage.KeyCart, &items); err != nil {
		m.logger.WarnContext(ctx, "cart unreadable, starting empty", logger.Key(storage.KeyCart), logger.Error(err))
		items = nil
	}

	items = slices.DeleteFunc(items, func(li LineItem) bool {
		return li.Name == "" || li.Quantity < 1
	})

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// Add increments the line matching (name, size) or appends a new one.
// It returns the new total.
func (m *Manager) Add(ctx context.Context, p Product) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := slices.IndexFunc(m.items, func(li LineItem) bool { return li.matches(p) }); i >= 0 {
		m.items[i].Quantity++
	} else {
		m.items = append(m.items, LineItem{
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Size:     p.Size,
			Quantity: 1,
		})
	}

	m.persist(ctx)
	return m.total(), nil
}

// SetQuantity sets the quantity of the line at index. Quantities below one
// are rejected and leave the line unchanged.
func (m *Manager) SetQuantity(ctx context.Context, index, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(index); err != nil {
		return err
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	m.items[index].Quantity = quantity
	m.persist(ctx)
	return nil
}

// Increase adds one to the line at index.
func (m *Manager) Increase(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(index); err != nil {
		return err
	}

	m.items[index].Quantity++
	m.persist(ctx)
	return nil
}

// Decrease subtracts one from the line at index unless it is already one.
// It reports whether the quantity changed.
func (m *Manager) Decrease(ctx context.Context, index int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(index); err != nil {
		return false, err
	}
	if m.items[index].Quantity <= 1 {
		return false, nil
	}

	m.items[index].Quantity--
	m.persist(ctx)
	return true, nil
}

// Remove deletes the line at index, shifting later lines down.
func (m *Manager) Remove(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(index); err != nil {
		return err
	}

	m.items = slices.Delete(m.items, index, index+1)
	m.persist(ctx)
	return nil
}

// Clear empties the cart and removes the persisted cart and total.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	for _, key := range []string{storage.KeyCart, storage.KeyCartTotal} {
		if err := m.store.Remove(ctx, key); err != nil {
			m.logger.ErrorContext(ctx, "failed to remove cart key", logger.Key(key), logger.Error(err))
		}
	}
}

// Reset empties the in-memory cart without touching the store.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}

// Total returns the sum of every line's subtotal.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total()
}

// Items returns a copy of the lines in insertion order.
func (m *Manager) Items() []LineItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// Len returns the number of lines.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Count returns the sum of quantities.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, li := range m.items {
		n += li.Quantity
	}
	return n
}

func (m *Manager) total() float64 {
	var sum float64
	for _, li := range m.items {
		sum += li.Subtotal()
	}
	return sum
}

func (m *Manager) check(index int) error {
	if index < 0 || index >= len(m.items) {
		return ErrIndexOutOfRange
	}
	return nil
}

// persist writes the cart and its display total. Failures are logged only.
func (m *Manager) persist(ctx context.Context) {
	items := m.items
	if items == nil {
		items = []LineItem{}
	}
	if err := storage.SetJSON(ctx, m.store, storage.KeyCart, items); err != nil {
		m.logger.ErrorContext(ctx, "failed to persist cart", logger.Key(storage.KeyCart), logger.Error(err))
		return
	}
	if err := m.store.Set(ctx, storage.KeyCartTotal, FormatAmount(m.total())); err != nil {
		m.logger.WarnContext(ctx, "failed to persist cart total", logger.Key(storage.KeyCartTotal), logger.Error(err))
		// A total from an older cart must not outlive it.
		if err := m.store.Remove(ctx, storage.KeyCartTotal); err != nil {
			m.logger.ErrorContext(ctx, "failed to remove stale cart total", logger.Key(storage.KeyCartTotal), logger.Error(err))
		}
	}
}
