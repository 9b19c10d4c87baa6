package service

import (
	"context"
	"fmt"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/internal/store"
	"github.com/culturemesh/accounts/models"
)

// userQueryService implements UserQueryService on top of the user repository.
type userQueryService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserQueryService constructs a UserQueryService backed by the given
// repository.
func NewUserQueryService(userRepository store.UserRepository, logger *logger.Logger) UserQueryService {
	return &userQueryService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// FilterUsers delegates to the repository. The repository binds every filter
// value as a SQL parameter; this layer only adds request-scoped logging.
func (s *userQueryService) FilterUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FilterUsers(ctx, filter)
	if err != nil {
		log.Err(err).Msg("user filter query failed")
		return nil, fmt.Errorf("user filter query failed: %w", err)
	}

	return users, nil
}
