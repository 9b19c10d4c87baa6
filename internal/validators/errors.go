package validators

import "errors"

var (
	// ErrUnsupportedType is returned when a Validator receives a value of a
	// type it does not know how to validate.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrMissingUsername is returned when a registration request carries an
	// empty username.
	ErrMissingUsername = errors.New("username is required")

	// ErrMissingPassword is returned when a registration request carries an
	// empty password.
	ErrMissingPassword = errors.New("password is required")

	// ErrInvalidEmail is returned when an optional email value is present but
	// does not look like an address.
	ErrInvalidEmail = errors.New("invalid email address")
)
