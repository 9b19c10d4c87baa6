package models

// Credential carries the authentication material extracted from an inbound
// request. Exactly one of the two variants is expected to be populated:
// a bearer token, or a login/password pair taken from HTTP Basic auth.
type Credential struct {
	// Token is the raw signed token string from a Bearer authorization.
	Token string

	// Login and Password form the Basic auth variant. Password is plaintext
	// for the duration of the request only and must never be logged or
	// persisted.
	Login    string
	Password string
}

// IsToken reports whether the credential carries the token variant.
func (c Credential) IsToken() bool {
	return c.Token != ""
}
