package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at creation time and immutable afterwards.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Uniqueness is enforced by the database at creation time.
	Login string `json:"username"`

	// Email is an optional contact address. Non-unique, used only by the
	// administrative query surface.
	Email string `json:"email,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
