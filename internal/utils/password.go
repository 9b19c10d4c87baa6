package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
var ErrEmptyPassword = errors.New("empty password")

// HashPassword derives a salted bcrypt hash from the given plaintext.
//
// bcrypt embeds a random salt in the output, so hashing the same plaintext
// twice produces two different strings that both verify against it. cost
// controls the work factor; values outside bcrypt's supported range fall back
// to bcrypt.DefaultCost.
//
// Returns the hash in bcrypt's standard string encoding or an error if the
// plaintext is empty or hashing fails.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
//
// The salt is recovered from the hash itself and the comparison runs in
// constant time inside bcrypt. Any mismatch, malformed hash, or internal
// error yields false; this boundary never surfaces an error to the caller.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
