package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkova/kidtrack/internal/models"
	"github.com/avolkova/kidtrack/internal/repository"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// CreateUser inserts a new user. A username collision is reported as
	// repository.ErrDuplicate.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UserByUsername fetches a user by username, (nil, nil) if absent.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService implements signup and credential verification by delegating
// persistence to a UserRepository.
type AuthService struct {
	repo UserRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// SignUp validates the signup payload, hashes the password and persists a
// new user. A username collision yields ErrUserExists.
func (s *AuthService) SignUp(ctx context.Context, in models.SignupInput) (models.User, error) {
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return models.User{}, ErrUserExists
	}
	if err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", err)
	}
	return user, nil
}

// Login verifies the username/password pair and returns the matching user.
// Unknown usernames and wrong passwords both map to ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.ErrFieldsRequired
	}

	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, ErrBadCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	return user, nil
}
