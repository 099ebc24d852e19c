package service

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/internal/domain"
)

// UserStore is the user slice of the entity store.
type UserStore interface {
	CreateUser(ctx context.Context, input domain.UserCreate) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserService handles user operations
type UserService struct {
	users UserStore
}

// NewUserService creates a new user service
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create registers a new user. Duplicate usernames and emails are
// accepted silently, the demo store performs no uniqueness check.
func (s *UserService) Create(ctx context.Context, input domain.UserCreate) (*domain.User, error) {
	user, err := s.users.CreateUser(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return user, nil
}
