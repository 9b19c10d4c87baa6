package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// SecureCompare reports whether two strings are equal without leaking the
// position of the first differing byte. Both inputs are reduced to
// HMAC-SHA256 digests under a throwaway key and compared with hmac.Equal, so
// the comparison cost does not depend on the inputs' common prefix or length.
//
// Used by the API-key middleware to compare the presented key against the
// configured one.
func SecureCompare(a, b string) bool {
	key := []byte("secure-compare")
	return hmac.Equal(hashString([]byte(a), string(key)), hashString([]byte(b), string(key)))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
