package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/culturemesh/accounts/internal/config"
	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/store"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/internal/validators"
	"github.com/culturemesh/accounts/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration payloads before any hashing or store
	// access happens.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor applied when hashing passwords at
	// registration time.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Process-wide, fixed at startup.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both username and password are non-empty (and that the
// optional email is well-formed), hashes the password with bcrypt, and
// delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if validation fails.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("login", req.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("login", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate resolves the acting user for the given credential.
//
// Token variant: the token is parsed and verified, then the user is looked up
// by the embedded ID. A token that no longer maps to a stored user (account
// deleted after issuance) fails authentication.
//
// Basic variant: the user is looked up by login and the password is compared
// against the stored bcrypt hash.
//
// Every failure path returns an error matching ErrUnauthenticated. For token
// failures the specific cause (ErrTokenIsExpired, ErrTokenIsInvalid) is kept
// in the wrapped chain, but the authentication decision itself never
// distinguishes them. Neither the password nor the raw token is ever logged.
func (a *authService) Authenticate(ctx context.Context, cred models.Credential) (models.User, error) {
	if cred.IsToken() {
		return a.authenticateToken(ctx, cred.Token)
	}
	return a.authenticateBasic(ctx, cred.Login, cred.Password)
}

func (a *authService) authenticateToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		log.Debug().Msg("token authentication failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Int64("id", token.UserID).Msg("token subject no longer exists")
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

func (a *authService) authenticateBasic(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, ErrUnauthenticated
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("login", login).Msg("basic authentication failed")
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Debug().Str("login", login).Msg("basic authentication failed")
		return models.User{}, ErrUnauthenticated
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// before the expiry check. The outcome is a tagged result: an expired token
// maps to ErrTokenIsExpired, every other failure (bad signature, wrong
// issuer, malformed or missing subject) maps to ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// GetUserByID fetches a user record by its identifier. Store sentinel errors
// pass through unchanged so handlers can map them to status codes.
func (a *authService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// TokenDuration reports the configured token time-to-live.
func (a *authService) TokenDuration() time.Duration {
	return a.tokenDuration
}
