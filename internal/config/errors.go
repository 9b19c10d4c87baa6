package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no source provided the JWT
	// signing secret.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingAPIKey indicates that no source provided the shared secret
	// for the administrative surface.
	ErrMissingAPIKey = errors.New("api key is required")
	// ErrMissingDSN indicates that no source provided the database
	// connection string.
	ErrMissingDSN = errors.New("database DSN is required")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
)
