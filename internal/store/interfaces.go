package store

import (
	"context"

	"github.com/culturemesh/accounts/models"
)

// UserRepository is the persistence contract for user accounts.
//
// Implementations must translate driver-level failures into the sentinel
// errors declared in errors.go so that callers can match with [errors.Is].
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate login yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID returns the account with the given identifier or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FilterUsers returns the accounts matching filter. All filter values are
	// bound as query parameters. An empty result is not an error.
	FilterUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}
