package service

import (
	"github.com/culturemesh/accounts/internal/config"
	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/store"
)

// Services aggregates every service exposed to the transport layer.
type Services struct {
	AuthService      AuthService
	UserQueryService UserQueryService
}

// NewServices wires the services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.Auth, logger),
		UserQueryService: NewUserQueryService(storages.UserRepository, logger),
	}
}
