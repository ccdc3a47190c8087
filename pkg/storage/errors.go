package storage

import "errors"

var (
	// ErrStorage wraps every read/write failure of the underlying backend.
	ErrStorage = errors.New("storage.failed")

	// ErrQuotaExceeded indicates the write would exceed the store capacity.
	ErrQuotaExceeded = errors.New("storage.quota_exceeded")

	// ErrCorrupt indicates a stored blob could not be decoded.
	ErrCorrupt = errors.New("storage.corrupt")

	// ErrEmptyKey is returned for operations on an empty key.
	ErrEmptyKey = errors.New("storage.empty_key")
)
