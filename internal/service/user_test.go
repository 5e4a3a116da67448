package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
	"ecommerce/internal/repository"
	"ecommerce/internal/service"
)

func newUserService(t *testing.T) (*service.UserService, *metrics.Registry) {
	t.Helper()
	rec, reg := newRecorder(t)
	return service.NewUserService(repository.NewUserRepository(repository.SeedUsers()), rec), reg
}

func activeUsers(reg *metrics.Registry) float64 {
	return counterValue(reg, metrics.ActiveUsers, nil)
}

func TestUserService_SyncActiveUsers(t *testing.T) {
	svc, reg := newUserService(t)

	require.NoError(t, svc.SyncActiveUsers(context.Background()))
	assert.Equal(t, 3.0, activeUsers(reg))
}

func TestUserService_Create(t *testing.T) {
	svc, reg := newUserService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, domain.CreateUserRequest{Name: "Dana", Email: "dana@example.com"})
	require.NoError(t, err)

	assert.Equal(t, domain.UserView{ID: 104, Name: "Dana", Role: domain.RoleCustomer, Active: true}, u)
	assert.Equal(t, 4.0, activeUsers(reg))

	_, err = svc.Create(ctx, domain.CreateUserRequest{Name: "Dana", Email: "dana@example.com"})
	require.ErrorIs(t, err, service.ErrEmailExists)
	assert.Equal(t, 4.0, activeUsers(reg))
}

func TestUserService_UpdateEmailClash(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Update(context.Background(), 101, domain.UpdateUserRequest{Email: "bob@example.com"})
	require.ErrorIs(t, err, service.ErrEmailExists)

	u, err := svc.Update(context.Background(), 101, domain.UpdateUserRequest{Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}

func TestUserService_Deactivate(t *testing.T) {
	svc, reg := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.Deactivate(ctx, 101))
	assert.Equal(t, 2.0, activeUsers(reg))

	u, err := svc.Get(ctx, 101)
	require.NoError(t, err)
	assert.False(t, u.Active)

	require.ErrorIs(t, svc.Deactivate(ctx, 999), service.ErrNotFound)
	assert.Equal(t, uint64(2), storeCalls(reg, metrics.OpUpdate, metrics.EntityUser))
}

func TestUserService_ListHidesEmail(t *testing.T) {
	svc, _ := newUserService(t)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, domain.UserView{ID: 103, Name: "Charlie Brown", Role: domain.RoleAdmin, Active: true}, users[2])
}
