package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is the collapsed authentication outcome. Every
	// failed credential check — unknown login, wrong password, expired or
	// forged token, user deleted after token issuance — resolves to it.
	// Token-specific causes stay inspectable through the wrapped chain.
	ErrUnauthenticated = errors.New("authentication failed")

	// ErrTokenIsExpired marks a token whose signature verified but whose
	// expiry timestamp is in the past.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid marks a token that failed signature verification or
	// carries a malformed payload.
	ErrTokenIsInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
