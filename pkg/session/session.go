package session

import (
	"encoding/json"
	"time"
)

// Session is one authenticated browsing period.
type Session struct {
	// Subject is the account key as originally registered.
	Subject string
	// Token is opaque; nothing looks sessions up by it.
	Token          string
	CreatedAt      time.Time
	LastActivityAt time.Time
	ExpiresAt      time.Time
	Active         bool
}

// record is the persisted form. Timestamps are Unix milliseconds.
type record struct {
	Email          string `json:"email"`
	Token          string `json:"token"`
	CreatedAt      int64  `json:"createdAt"`
	LastActivityAt int64  `json:"lastActivityAt"`
	ExpiresAt      int64  `json:"expiresAt"`
	IsActive       bool   `json:"isActive"`
}

func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Email:          s.Subject,
		Token:          s.Token,
		CreatedAt:      s.CreatedAt.UnixMilli(),
		LastActivityAt: s.LastActivityAt.UnixMilli(),
		ExpiresAt:      s.ExpiresAt.UnixMilli(),
		IsActive:       s.Active,
	})
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*s = Session{
		Subject:        r.Email,
		Token:          r.Token,
		CreatedAt:      time.UnixMilli(r.CreatedAt),
		LastActivityAt: time.UnixMilli(r.LastActivityAt),
		ExpiresAt:      time.UnixMilli(r.ExpiresAt),
		Active:         r.IsActive,
	}
	return nil
}

// touch is the only place timing fields of an existing session change.
func (s *Session) touch(now time.Time, timeout time.Duration) {
	s.LastActivityAt = now
	s.ExpiresAt = now.Add(timeout)
}

// ValidAt reports whether the session is usable at now for the given timeout.
func (s *Session) ValidAt(now time.Time, timeout time.Duration) bool {
	if s == nil || !s.Active || s.Subject == "" {
		return false
	}
	if now.After(s.ExpiresAt) || s.LastActivityAt.After(now) {
		return false
	}
	return now.Sub(s.LastActivityAt) <= timeout
}

// IdleFor returns how long the session has been inactive at now.
func (s *Session) IdleFor(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	return now.Sub(s.LastActivityAt)
}
