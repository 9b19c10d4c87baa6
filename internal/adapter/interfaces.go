// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CultureMesh

// Package adapter provides a typed client for the accounts HTTP API.
//
// The primary abstraction is [AccountsClient], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAccountsClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/culturemesh/accounts/models"
)

// AccountsClient defines transport-agnostic communication with the accounts
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type AccountsClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful ObtainToken.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. Returns [ErrBadRequest] (wrapped) when
	// the payload is invalid or the username is already taken; the response
	// body in the error message names the cause.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// ObtainToken exchanges Basic credentials for a bearer token. On success
	// the token is stored via SetToken for subsequent calls.
	ObtainToken(ctx context.Context, username, password string) (models.TokenResponse, error)

	// Resource fetches the protected demonstration resource using the stored
	// bearer token.
	Resource(ctx context.Context) (models.ResourceResponse, error)

	// Profile fetches the public profile of the user with the given id.
	// Returns [ErrNotFound] (wrapped) when no such user exists.
	Profile(ctx context.Context, userID int64) (models.ProfileResponse, error)

	// Ping checks the administrative surface with the configured api key.
	Ping(ctx context.Context) error

	// QueryUsers runs a filtered account listing on the administrative
	// surface with the configured api key.
	QueryUsers(ctx context.Context, filter models.UserFilter) (models.UserQueryResponse, error)
}
