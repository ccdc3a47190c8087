// Package storefront wires the session, credential, cart and checkout
// managers into a single page lifetime.
//
// A Page is created once per page load over a persistent storage.Store.
// Load reconciles stored state (reaping expired sessions and stale markers),
// starts or stops the activity monitor and hydrates the cart. The remaining
// methods implement the storefront flows:
//
//	page, err := storefront.New(cfg, store, storefront.WithNotifier(ui))
//	if err != nil {
//		return err
//	}
//	defer page.Close()
//
//	state := page.Load(ctx)
//	if !state.LoggedIn {
//		_, err = page.Login(ctx, validator.LoginForm{Email: email, Password: password})
//	}
//	total, err := page.AddToCart(ctx, "Latte", "M")
//
// Errors returned by the flows are sentinel errors from the underlying
// packages. Message turns any of them into the text shown to the shopper;
// credential failures are reported with one generic message.
//
// OpenStore selects the storage backend (memory, file, redis or mongo) from
// StorageConfig. Config aggregates every package configuration and is loaded
// from the environment with pkg/config.
package storefront
