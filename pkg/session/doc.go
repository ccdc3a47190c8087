// Package session owns the authenticated browsing session of a storefront
// page: creation, validation, activity refresh, expiry and termination.
//
// At most one Session exists per store. It is persisted as JSON under
// storage.KeySession together with the storage.KeyCurrentUser marker, which
// mirrors the session subject for simple "is someone logged in" checks.
//
// A session is valid while it is active, now <= ExpiresAt and the time since
// LastActivityAt does not exceed the configured timeout (30 minutes by
// default). ExpiresAt is always LastActivityAt + timeout: both fields are
// written by a single touch path, so the two checks agree unless the stored
// record was edited by hand.
//
// # Usage
//
//	mgr := session.New(
//		session.WithStore(store),
//		session.WithLogger(log),
//	)
//
//	sess, err := mgr.Create(ctx, "Ana@example.com")
//	...
//	if subject, ok := mgr.CurrentSubject(ctx); ok {
//		// logged in
//	}
//	_ = mgr.Refresh(ctx)   // on user activity
//	_ = mgr.Terminate(ctx) // on logout or expiry
//
// Terminate removes the session, the marker and the persisted cart, then runs
// hooks registered with OnTerminate. The activity monitor and the in-memory
// cart subscribe to it so a terminated session is never refreshed by a late
// event.
//
// RecordActivity combines the validity check with refresh-or-reap in a single
// locked step and is what the activity monitor calls for every interaction.
//
// Restore reconciles persisted state on page load: an expired session is
// reaped and a marker without a valid session is cleared.
//
// # Concurrency
//
// All Manager methods are safe for concurrent use. Transitions are serialized
// with a mutex. Termination hooks run after the lock is released, so a hook
// may call back into the Manager.
//
// # Errors
//
// Create fails with ErrEmptySubject, ErrTokenGeneration or an error wrapping
// storage.ErrStorage. Read failures and corrupt records are logged and treated
// as "no session".
package session
