package common

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// MakeRandHexString returns size random bytes encoded as hex (2*size chars).
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes b. Used for passwords read from the terminal.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeIdentity trims and lower-cases a username or email so that
// lookups and uniqueness are case-insensitive.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
