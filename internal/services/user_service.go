package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ds3-project/ds3-backend/internal/models"
	"github.com/ds3-project/ds3-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameRequired = errors.New("username is required")
	ErrUserConflict     = errors.New("username or email already exists")
)

// UserService handles user business logic
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Username    string
	Email       string
	DisplayName string
	AvatarURL   string
}

// UpdateUserInput holds the full replacement set of mutable user fields.
// Username is immutable after creation.
type UpdateUserInput struct {
	Email       string
	DisplayName string
	AvatarURL   string
}

// ListUsers returns all users ordered by username
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUserByUsername returns a user by username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser creates a user and returns the stored record
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &models.User{
		Username:    username,
		Email:       normalizeEmail(input.Email),
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.users.FindByID(user.ID)
}

// UpdateUser replaces all mutable fields of a user
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Email = normalizeEmail(input.Email)
	user.DisplayName = input.DisplayName
	user.AvatarURL = input.AvatarURL

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserConflict
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.users.FindByID(id)
}

// normalizeEmail stores absent emails as NULL so the unique index only
// applies to real addresses.
func normalizeEmail(email string) *string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// DeleteUser removes a user by ID
func (s *UserService) DeleteUser(id uint64) error {
	if err := s.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
