// Package cart keeps the ordered list of line items the shopper intends to
// buy and persists it under storage.KeyCart after every mutation.
//
// Items are unique per (name, size): adding the same product and size again
// increments its quantity instead of appending a new line. Quantities never
// drop below one; Decrease stops at one and removal is always an explicit
// Remove call. Indices shift down after Remove, so callers must not cache
// them across removals.
//
// Total is recomputed from the items on every call, summing each line's
// price × quantity independently. FormatAmount rounds to two decimals for
// display only.
//
//	c := cart.New(store, cart.WithLogger(log))
//	c.Hydrate(ctx)
//	total, err := c.Add(ctx, cart.Product{Name: "Latte", Price: 120, Size: "M"})
//
// Storage write failures are logged and the in-memory cart keeps the change,
// so a full store never blocks shopping within the current page.
package cart
