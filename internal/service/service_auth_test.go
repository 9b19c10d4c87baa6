package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/culturemesh/accounts/internal/config"
	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/store"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	filterUsersFn     func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return m.findUserByLoginFn(ctx, login)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) FilterUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.filterUsersFn(ctx, filter)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "accounts-test",
		TokenDuration: 10 * time.Minute,
		BcryptCost:    bcrypt.MinCost,
	}
}

func newTestAuthService(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAuthConfig(), logger.Nop())
}

// storedUser returns a user fixture whose PasswordHash matches password.
func storedUser(t *testing.T, id int64, login, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: id, Login: login, PasswordHash: hash}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice", registered.Login)

	// The stored value must be a verifying bcrypt hash, never the plaintext.
	assert.NotEqual(t, "s3cret", persisted.PasswordHash)
	assert.True(t, utils.VerifyPassword("s3cret", persisted.PasswordHash))
}

func TestRegisterUser_ValidationFailure(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "missing username", req: models.RegisterRequest{Password: "s3cret"}},
		{name: "missing password", req: models.RegisterRequest{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_Conflict(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username: "alice",
		Password: "s3cret",
	})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Authenticate — basic variant
// ─────────────────────────────────────────────

func TestAuthenticate_BasicSuccess(t *testing.T) {
	user := storedUser(t, 7, "alice", "s3cret")
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, login string) (models.User, error) {
			require.Equal(t, "alice", login)
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	resolved, err := svc.Authenticate(context.Background(), models.Credential{Login: "alice", Password: "s3cret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resolved.UserID)
}

func TestAuthenticate_BasicUnknownLogin(t *testing.T) {
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Authenticate(context.Background(), models.Credential{Login: "ghost", Password: "pw"})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticate_BasicWrongPassword(t *testing.T) {
	user := storedUser(t, 7, "alice", "s3cret")
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.Authenticate(context.Background(), models.Credential{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticate_BasicEmptyCredential(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Authenticate(context.Background(), models.Credential{})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// ─────────────────────────────────────────────
// Authenticate — token variant
// ─────────────────────────────────────────────

// TestAuthenticate_TokenRoundTrip issues a token for a user authenticated via
// basic credentials and verifies the token resolves to the same user ID.
func TestAuthenticate_TokenRoundTrip(t *testing.T) {
	user := storedUser(t, 7, "alice", "s3cret")
	repo := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
		findUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return user, nil
		},
	}

	svc := newTestAuthService(repo)
	ctx := context.Background()

	viaBasic, err := svc.Authenticate(ctx, models.Credential{Login: "alice", Password: "s3cret"})
	require.NoError(t, err)

	token, err := svc.CreateToken(ctx, viaBasic)
	require.NoError(t, err)

	viaToken, err := svc.Authenticate(ctx, models.Credential{Token: token.SignedString})
	require.NoError(t, err)
	assert.Equal(t, viaBasic.UserID, viaToken.UserID)
}

func TestAuthenticate_TokenExpired(t *testing.T) {
	user := storedUser(t, 7, "alice", "s3cret")
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return user, nil
		},
	}

	cfg := testAuthConfig()
	issued, err := utils.GenerateJWTToken(cfg.TokenIssuer, 7, -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)

	svc := newTestAuthService(repo)
	_, err = svc.Authenticate(context.Background(), models.Credential{Token: issued.SignedString})

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
	assert.NotErrorIs(t, err, ErrTokenIsInvalid)
}

func TestAuthenticate_TokenTampered(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), models.Credential{Token: token.SignedString + "x"})

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
	assert.NotErrorIs(t, err, ErrTokenIsExpired)
}

// TestAuthenticate_TokenUserDeleted covers an account removed between token
// issuance and use.
func TestAuthenticate_TokenUserDeleted(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), models.Credential{Token: token.SignedString})

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticate_TokenStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, storeErr
		},
	}

	svc := newTestAuthService(repo)
	token, err := svc.CreateToken(context.Background(), models.User{UserID: 7})
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), models.Credential{Token: token.SignedString})

	// Store failures are not authentication failures.
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, storeErr)
}

// ─────────────────────────────────────────────
// ParseToken / CreateToken
// ─────────────────────────────────────────────

func TestParseToken_Success(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	issued, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestTokenDuration(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	assert.Equal(t, 10*time.Minute, svc.TokenDuration())
}

// ─────────────────────────────────────────────
// GetUserByID
// ─────────────────────────────────────────────

func TestGetUserByID_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := newTestAuthService(repo)
	_, err := svc.GetUserByID(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
