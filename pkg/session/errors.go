package session

import "errors"

var (
	// ErrSessionNotFound indicates no session is stored.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the stored session is inactive or past its timeout.
	ErrSessionExpired = errors.New("session.expired")

	// ErrEmptySubject is returned when creating a session without a subject.
	ErrEmptySubject = errors.New("session.empty_subject")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrPersistFailed indicates the session could not be written to the store.
	ErrPersistFailed = errors.New("session.persist_failed")
)
