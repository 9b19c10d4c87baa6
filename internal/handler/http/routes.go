package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Get("/api/users/{id}", h.profile)
	})

	// routes behind the token/basic authorization gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/token", h.token)
		r.Get("/api/resource", h.resource)
	})

	// administrative routes behind the api-key gate
	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey)
		r.Get("/ping", h.ping)
		r.Get("/users", h.queryUsers)
	})

	return router
}
