package service

import (
	"context"
	"time"

	"github.com/culturemesh/accounts/models"
)

// AuthService owns credential verification and the token lifecycle.
type AuthService interface {
	// RegisterUser validates the registration payload, hashes the password,
	// and persists the new account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Authenticate resolves the acting user for the given credential (token
	// or login/password). Every failure collapses to [ErrUnauthenticated];
	// token-specific causes remain matchable via [errors.Is].
	Authenticate(ctx context.Context, cred models.Credential) (models.User, error)

	// CreateToken issues a signed token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUserByID fetches a user record by its identifier.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// TokenDuration reports the configured token time-to-live.
	TokenDuration() time.Duration
}

// UserQueryService serves the administrative, API-key-gated user query
// surface.
type UserQueryService interface {
	// FilterUsers returns accounts matching the filter. Every filter value is
	// bound as a SQL parameter by the repository.
	FilterUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}
