package service

import (
	"context"
	"errors"
	"testing"

	"github.com/culturemesh/accounts/internal/logger"
	"github.com/culturemesh/accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterUsers_Success(t *testing.T) {
	repo := &mockUserRepository{
		filterUsersFn: func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
			assert.Equal(t, "alice@example.com", filter.Email)
			return []models.User{{UserID: 1, Login: "alice", Email: "alice@example.com"}}, nil
		},
	}

	svc := NewUserQueryService(repo, logger.Nop())
	users, err := svc.FilterUsers(context.Background(), models.UserFilter{Email: "alice@example.com"})

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Login)
}

func TestFilterUsers_StoreFailure(t *testing.T) {
	storeErr := errors.New("query failed")
	repo := &mockUserRepository{
		filterUsersFn: func(_ context.Context, _ models.UserFilter) ([]models.User, error) {
			return nil, storeErr
		},
	}

	svc := NewUserQueryService(repo, logger.Nop())
	_, err := svc.FilterUsers(context.Background(), models.UserFilter{})

	assert.ErrorIs(t, err, storeErr)
}
