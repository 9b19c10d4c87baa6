package models

// RegisterRequest is the JSON body accepted by POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// RegisterResponse is the JSON body returned on successful registration.
type RegisterResponse struct {
	Username string `json:"username"`
}

// ProfileResponse is the JSON body returned by GET /api/users/{id}.
type ProfileResponse struct {
	Username string `json:"username"`
}

// TokenResponse is the JSON body returned by GET /api/token.
// Duration is the token time-to-live in seconds.
type TokenResponse struct {
	Token    string `json:"token"`
	Duration int64  `json:"duration"`
}

// ResourceResponse is the JSON body returned by GET /api/resource.
type ResourceResponse struct {
	Data string `json:"data"`
}

// UserQueryResponse is the JSON body returned by the administrative
// GET /users endpoint: the matching accounts and their count.
type UserQueryResponse struct {
	Users  []UserSummary `json:"users"`
	Length int           `json:"length"`
}

// UserSummary is the administrative projection of a user record.
// It never includes credential material.
type UserSummary struct {
	UserID int64  `json:"id"`
	Login  string `json:"username"`
	Email  string `json:"email,omitempty"`
}
