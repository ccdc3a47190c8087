package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
	"time"
)

// generateToken returns the creation time in base36 followed by 32 random bytes.
func generateToken(now time.Time) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return strconv.FormatInt(now.UnixMilli(), 36) + "." + base64.RawURLEncoding.EncodeToString(b), nil
}
