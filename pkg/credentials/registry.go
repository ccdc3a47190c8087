package credentials

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/storage"
)

// Account is a registered identity.
type Account struct {
	// Email keeps the casing typed at registration.
	Email          string
	DisplayName    string
	CredentialHash string
}

type entry struct {
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Registry stores accounts in a storage.Store.
type Registry struct {
	mu     sync.Mutex
	store  storage.Store
	hasher Hasher
	logger *slog.Logger
}

// New creates a registry backed by store.
func New(store storage.Store, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		hasher: BcryptHasher{Cost: DefaultCost},
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.store == nil {
		r.store = storage.NewMemoryStore()
	}
	r.logger = r.logger.With(logger.Component("credentials"))
	return r
}

// Degraded reports whether secrets are handled in plaintext.
func (r *Registry) Degraded() bool {
	return r.hasher == nil
}

// Register creates an account. The e-mail must not be registered in any casing.
func (r *Registry) Register(ctx context.Context, email, displayName, secret string) (*Account, error) {
	email = strings.TrimSpace(email)
	key := sanitizer.NormalizeEmail(email)
	if key == "" {
		return nil, ErrEmptyEmail
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, exists := table[key]; exists {
		return nil, ErrDuplicateAccount
	}

	hash, err := r.hash(ctx, secret)
	if err != nil {
		return nil, err
	}

	table[key] = entry{Email: email, Name: displayName, Password: hash}
	if err := storage.SetJSON(ctx, r.store, storage.KeyAccounts, table); err != nil {
		r.logger.ErrorContext(ctx, "failed to persist account table", logger.Subject(email), logger.Error(err))
		return nil, err
	}

	r.logger.InfoContext(ctx, "account registered", logger.Subject(email))
	return &Account{Email: email, DisplayName: displayName, CredentialHash: hash}, nil
}

// Authenticate verifies secret and returns the registered e-mail casing.
func (r *Registry) Authenticate(ctx context.Context, email, secret string) (string, error) {
	r.mu.Lock()
	table, err := r.load(ctx)
	r.mu.Unlock()
	if err != nil {
		return "", ErrInvalidCredentials
	}

	e, ok := table[sanitizer.NormalizeEmail(email)]
	if !ok || e.Password == "" {
		return "", ErrInvalidCredentials
	}

	if !r.verify(ctx, e.Password, secret) {
		r.logger.DebugContext(ctx, "credential mismatch", logger.Subject(e.Email))
		return "", ErrInvalidCredentials
	}
	return e.Email, nil
}

// Lookup returns the account registered under email in any casing.
func (r *Registry) Lookup(ctx context.Context, email string) (*Account, bool) {
	r.mu.Lock()
	table, err := r.load(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, false
	}

	e, ok := table[sanitizer.NormalizeEmail(email)]
	if !ok {
		return nil, false
	}
	return &Account{Email: e.Email, DisplayName: e.Name, CredentialHash: e.Password}, true
}

// Delete removes an account. It exists to undo a registration whose
// follow-up steps failed.
func (r *Registry) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load(ctx)
	if err != nil {
		return err
	}
	key := sanitizer.NormalizeEmail(email)
	if _, ok := table[key]; !ok {
		return nil
	}
	delete(table, key)
	return storage.SetJSON(ctx, r.store, storage.KeyAccounts, table)
}

// load reads the account table keyed by normalized e-mail. A corrupt table
// is logged and treated as empty; a failed read is returned.
func (r *Registry) load(ctx context.Context) (map[string]entry, error) {
	var raw map[string]entry
	_, err := storage.GetJSON(ctx, r.store, storage.KeyAccounts, &raw)
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			r.logger.ErrorContext(ctx, "failed to read account table", logger.Error(err))
			return nil, err
		}
		r.logger.WarnContext(ctx, "account table corrupt, treating as empty", logger.Error(err))
		raw = nil
	}

	// Legacy keys that collide after normalization resolve in sorted order.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	table := make(map[string]entry, len(raw))
	for _, k := range keys {
		e := raw[k]
		if e.Email == "" {
			e.Email = k
		}
		norm := sanitizer.NormalizeEmail(k)
		if _, dup := table[norm]; !dup {
			table[norm] = e
		}
	}
	return table, nil
}

func (r *Registry) hash(ctx context.Context, secret string) (string, error) {
	if r.hasher == nil {
		r.logger.WarnContext(ctx, "storing credential without hashing", logger.Error(ErrDegradedSecurityMode))
		return secret, nil
	}
	h, err := r.hasher.Hash(secret)
	if err != nil {
		return "", errors.Join(ErrHashFailed, err)
	}
	return h, nil
}

func (r *Registry) verify(ctx context.Context, hash, secret string) bool {
	if r.hasher == nil {
		r.logger.WarnContext(ctx, "comparing credential in plaintext", logger.Error(ErrDegradedSecurityMode))
		return subtle.ConstantTimeCompare([]byte(hash), []byte(secret)) == 1
	}
	return r.hasher.Verify(hash, secret)
}
