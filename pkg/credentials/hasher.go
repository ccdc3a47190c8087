package credentials

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// maxBcryptInput is the number of secret bytes bcrypt takes into account.
const maxBcryptInput = 72

// Hasher hashes and verifies secrets.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(hash, secret string) bool
}

// BcryptHasher hashes secrets with bcrypt. Secrets longer than 72 bytes are
// truncated, matching what other bcrypt implementations do silently.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword(truncate(secret), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h BcryptHasher) Verify(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(secret)) == nil
}

func truncate(secret string) []byte {
	b := []byte(secret)
	if len(b) > maxBcryptInput {
		b = b[:maxBcryptInput]
	}
	return b
}
