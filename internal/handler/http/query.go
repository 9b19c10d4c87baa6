package http

import (
	"net/http"
	"strconv"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/utils"
	"github.com/culturemesh/accounts/models"
)

// ping handles GET /ping behind the API-key gate.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}

// queryUsers handles GET /users behind the API-key gate.
//
// Optional query parameters "email", "login", and "limit" narrow the result.
// Every value is handed to the repository as a bind parameter; nothing from
// the request is ever spliced into SQL text.
func (h *Handler) queryUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.UserFilter{
		Email: r.URL.Query().Get("email"),
		Login: r.URL.Query().Get("login"),
	}

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	users, err := h.services.UserQueryService.FilterUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user query")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, models.UserSummary{
			UserID: user.UserID,
			Login:  user.Login,
			Email:  user.Email,
		})
	}

	utils.WriteJSON(w, models.UserQueryResponse{
		Users:  summaries,
		Length: len(summaries),
	}, http.StatusOK)
}
