package http

import (
	"github.com/culturemesh/accounts/internal/config"
	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/service"
)

type Handler struct {
	services *service.Services

	// apiKey is the shared secret guarding the administrative route group.
	apiKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Security, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   cfg.APIKey,
		logger:   logger,
	}
}
