package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/service"
	"github.com/culturemesh/accounts/internal/store"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/models"
)

// register handles POST /api/users.
//
// Responses:
//   - 201 with {"username": ...} and a Location header pointing at the new
//     resource.
//   - 400 when the body is not JSON, fails validation, or the login is
//     already taken. The conflict keeps its own sentinel internally; on the
//     wire it shares the 400 of the other rejected registrations.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			http.Error(w, "login already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", registeredUser.UserID))
	utils.WriteJSON(w, models.RegisterResponse{Username: registeredUser.Login}, http.StatusCreated)
}

// profile handles GET /api/users/{id}.
//
// Responses:
//   - 200 with {"username": ...}.
//   - 404 when the id is not numeric or no such user exists.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	foundUser, err := h.services.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("unexpected error occurred during user lookup")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Username: foundUser.Login}, http.StatusOK)
}

// token handles GET /api/token behind the authorization gate. It issues a
// fresh token for the already-resolved identity and echoes the configured
// ttl in seconds.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		unauthorized(w)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, models.User{UserID: userID})
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		Token:    token.SignedString,
		Duration: int64(h.services.AuthService.TokenDuration().Seconds()),
	}, http.StatusOK)
}

// resource handles GET /api/resource behind the authorization gate. It
// exists to demonstrate gate usage: the response greets the resolved
// identity.
func (h *Handler) resource(w http.ResponseWriter, r *http.Request) {
	login, ok := utils.GetUserLoginFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	utils.WriteJSON(w, models.ResourceResponse{
		Data: fmt.Sprintf("Hello, %s!", login),
	}, http.StatusOK)
}
