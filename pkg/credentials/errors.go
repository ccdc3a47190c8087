package credentials

import "errors"

var (
	// ErrDuplicateAccount indicates the e-mail is already registered in any casing.
	ErrDuplicateAccount = errors.New("credentials.duplicate_account")

	// ErrInvalidCredentials covers both unknown e-mail and wrong secret.
	ErrInvalidCredentials = errors.New("credentials.invalid_credentials")

	// ErrDegradedSecurityMode marks operations performed without a hasher.
	ErrDegradedSecurityMode = errors.New("credentials.degraded_security_mode")

	// ErrEmptyEmail is returned when registering without an e-mail.
	ErrEmptyEmail = errors.New("credentials.empty_email")

	// ErrHashFailed indicates the hasher could not hash the secret.
	ErrHashFailed = errors.New("credentials.hash_failed")
)
