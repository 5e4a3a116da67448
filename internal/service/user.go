package service

import (
	"context"
	"fmt"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
)

type UserService struct {
	repo     UserStore
	recorder EventRecorder
}

func NewUserService(repo UserStore, recorder EventRecorder) *UserService {
	return &UserService{
		repo:     repo,
		recorder: recorder,
	}
}

// SyncActiveUsers publishes the current number of active users.
func (s *UserService) SyncActiveUsers(ctx context.Context) error {
	n, err := s.repo.ActiveCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active users: %w", err)
	}
	s.recorder.SetActiveUsers(n)
	return nil
}

func (s *UserService) List(ctx context.Context) ([]domain.UserView, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityUser)
	users, err := s.repo.List(ctx)
	stop()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	views := make([]domain.UserView, len(users))
	for i, u := range users {
		views[i] = u.View()
	}
	return views, nil
}

func (s *UserService) Get(ctx context.Context, id int) (domain.UserView, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityUser)
	u, err := s.repo.Get(ctx, id)
	stop()
	if err != nil {
		return domain.UserView{}, fmt.Errorf("failed to get user: %w", translate(err))
	}
	return u.View(), nil
}

func (s *UserService) Create(ctx context.Context, req domain.CreateUserRequest) (domain.UserView, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	stop := s.recorder.TimeStoreOperation(metrics.OpCreate, metrics.EntityUser)
	u, active, err := s.repo.Create(ctx, domain.User{Name: req.Name, Email: req.Email, Role: role})
	stop()
	if err != nil {
		return domain.UserView{}, fmt.Errorf("failed to create user: %w", translate(err))
	}

	s.recorder.SetActiveUsers(active)
	return u.View(), nil
}

func (s *UserService) Update(ctx context.Context, id int, req domain.UpdateUserRequest) (domain.UserView, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityUser)
	u, err := s.repo.Update(ctx, id, req.Apply)
	stop()
	if err != nil {
		return domain.UserView{}, fmt.Errorf("failed to update user: %w", translate(err))
	}
	return u.View(), nil
}

// Deactivate soft-deletes user id.
func (s *UserService) Deactivate(ctx context.Context, id int) error {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityUser)
	active, err := s.repo.Deactivate(ctx, id)
	stop()
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", translate(err))
	}

	s.recorder.SetActiveUsers(active)
	return nil
}
