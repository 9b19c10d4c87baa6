// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CultureMesh

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key and API key are process-wide secrets with no sensible
// default, and the database DSN is required for every surface, so all three
// must be provided by some source.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Security.APIKey == "" {
		return ErrMissingAPIKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	return nil
}
