// Package credentials is the storefront account table: registration and
// password verification over a storage.Store.
//
// All accounts are persisted as one JSON object under storage.KeyAccounts,
// keyed by the normalized (trimmed, case-folded) e-mail:
//
//	{"ana@example.com": {"email": "Ana@Example.com", "name": "Ana", "password": "$2a$10$..."}}
//
// Lookups are case-insensitive, but Authenticate returns the e-mail exactly as
// it was registered so the session subject stays stable whatever casing the
// user types at login. Entries written without an "email" field use their
// map key as the registered casing.
//
// # Hashing
//
// Secrets are hashed by an injected Hasher. New defaults to BcryptHasher with
// cost 10. Passing WithHasher(nil) runs the registry in degraded mode: secrets
// are stored and compared in plaintext, every use logs
// ErrDegradedSecurityMode at WARN level and Degraded reports true.
//
// # Errors
//
// Register fails with ErrDuplicateAccount when the normalized e-mail is taken.
// Authenticate returns ErrInvalidCredentials for unknown e-mails and wrong
// secrets alike.
package credentials
