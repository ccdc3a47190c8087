package activity

import "errors"

var (
	// ErrNoSessions is returned when a Monitor is created without a session manager.
	ErrNoSessions = errors.New("activity.no_sessions")
)
