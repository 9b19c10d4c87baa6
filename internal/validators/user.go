package validators

import (
	"context"
	"net/mail"

	"github.com/culturemesh/accounts/models"
)

// Field names accepted by UserValidator for scoped validation.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// UserValidator validates registration payloads before they reach the
// service layer.
type UserValidator struct {
}

// NewUserValidator constructs a [Validator] for registration requests.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks a [models.RegisterRequest] (by value or pointer). When
// fields is empty, every rule is applied; otherwise only the named fields are
// checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if shouldCheck(FieldUsername, fields) && req.Username == "" {
		return ErrMissingUsername
	}

	if shouldCheck(FieldPassword, fields) && req.Password == "" {
		return ErrMissingPassword
	}

	if shouldCheck(FieldEmail, fields) && req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return ErrInvalidEmail
		}
	}

	return nil
}

// shouldCheck reports whether field participates in this validation run.
// An empty scope means all fields are checked.
func shouldCheck(field string, scope []string) bool {
	if len(scope) == 0 {
		return true
	}
	for _, f := range scope {
		if f == field {
			return true
		}
	}
	return false
}
