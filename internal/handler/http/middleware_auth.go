// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, API-key checking, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/models"
)

// auth is the authorization gate applied to protected routes.
//
// It extracts a credential from the "Authorization" header — either a Bearer
// token or Basic username/password — and resolves the acting user via
// [service.AuthService.Authenticate]. On success the user's ID and login are
// stored in the request context under [utils.UserIDCtxKey] and
// [utils.UserLoginCtxKey] before delegating to the next handler; the wrapped
// handler never runs on a failed check.
//
// Matching the historical verify flow, the username slot of a Basic
// credential is first tried as a token, so clients may send a previously
// issued token as the Basic username with any password.
//
// Every rejection produces the same 401 response with a generic body. The
// reason — unknown user, wrong password, expired token, forged token — is
// deliberately not exposed; it is logged server-side only.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cred, err := credentialFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("rejecting request without usable credentials")
			unauthorized(w)
			return
		}

		user, err := h.services.AuthService.Authenticate(ctx, cred)
		if err != nil {
			log.Debug().Msg("authentication failed")
			unauthorized(w)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-running the credential check.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UserLoginCtxKey, user.Login)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialFromHeader turns a raw "Authorization" header value into a
// [models.Credential].
//
// Supported forms:
//
//	Authorization: Bearer <token>
//	Authorization: Basic <base64(username:password)>
//
// With Basic credentials the username slot may carry a previously issued
// token instead of a login; in that case the credential is reported as the
// token variant and the password is ignored.
func credentialFromHeader(authHeader string) (models.Credential, error) {
	if authHeader == "" {
		return models.Credential{}, ErrEmptyAuthorizationHeader
	}

	scheme, rest, found := strings.Cut(authHeader, " ")
	if !found || rest == "" {
		return models.Credential{}, ErrInvalidAuthorizationHeader
	}

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return models.Credential{}, ErrInvalidAuthorizationHeader
		}
		return models.Credential{Token: token}, nil

	case strings.EqualFold(scheme, "Basic"):
		username, password, ok := decodeBasicAuth(rest)
		if !ok {
			return models.Credential{}, ErrInvalidAuthorizationHeader
		}
		if looksLikeToken(username) {
			return models.Credential{Token: username}, nil
		}
		return models.Credential{Login: username, Password: password}, nil

	default:
		return models.Credential{}, ErrInvalidAuthorizationHeader
	}
}

// decodeBasicAuth decodes the payload of a Basic authorization value into a
// username/password pair.
func decodeBasicAuth(encoded string) (username, password string, ok bool) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}

	username, password, ok = strings.Cut(string(decoded), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}

// looksLikeToken reports whether the Basic username slot carries a compact
// JWS (three dot-separated segments) rather than a login.
func looksLikeToken(s string) bool {
	return strings.Count(s, ".") == 2
}

// unauthorized writes the single generic rejection used for every
// authentication failure.
func unauthorized(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
