package handler

import (
	"errors"

	"github.com/culturemesh/accounts/internal/config"
	"github.com/culturemesh/accounts/internal/handler/http"
	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

// Handlers aggregates the transport handlers of the application.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Security, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
