package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// TokenFingerprint returns a short digest of a push token, safe to log
func TokenFingerprint(token string) string {
	if token == "" {
		return "<none>"
	}
	hash, err := blake2b.New(5, nil)
	if err != nil {
		panic("Unable to create hash")
	}
	hash.Write([]byte(token))
	return hex.EncodeToString(hash.Sum(nil))
}
