package services

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserService interface {
	Register(email, username, plainPassword string) (*models.User, error)
	CreateUser(user *models.User, plainPassword string) error
	GetUserByID(id int) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int) error
	ListUsers(limit, offset int) ([]*models.User, error)
	GetUserCount() (int, error)
}

type userService struct {
	repo   repositories.UserRepository
	emails EmailService
	auth   AuthService
}

func NewUserService(repo repositories.UserRepository, emails EmailService, auth AuthService) UserService {
	return &userService{
		repo:   repo,
		emails: emails,
		auth:   auth,
	}
}

// Register creates an inactive, unverified account. The caller is expected
// to follow up with a verification-code send.
func (s *userService) Register(email, username, plainPassword string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)

	if existing, err := s.repo.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	if existing, err := s.repo.GetByUsername(username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.auth.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:           email,
		Username:        username,
		PasswordHash:    hash,
		MembershipLevel: models.MembershipFree,
		IsActive:        false,
		IsVerified:      false,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.emails != nil {
		s.emails.SendWelcomeEmail(user.Email, user.Username)
	}
	return user, nil
}

// CreateUser is the admin path: pass the plain password here.
func (s *userService) CreateUser(user *models.User, plainPassword string) error {
	if strings.TrimSpace(plainPassword) == "" {
		return fmt.Errorf("password is required")
	}
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if existing, err := s.repo.GetByEmail(user.Email); err != nil {
		return err
	} else if existing != nil {
		return ErrEmailTaken
	}
	if existing, err := s.repo.GetByUsername(user.Username); err != nil {
		return err
	} else if existing != nil {
		return ErrUsernameTaken
	}
	hash, err := s.auth.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.repo.Create(user)
}

func (s *userService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.GetByEmail(email)
}

func (s *userService) UpdateUser(user *models.User) error {
	return s.repo.Update(user)
}

func (s *userService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}

func (s *userService) ListUsers(limit, offset int) ([]*models.User, error) {
	return s.repo.List(limit, offset)
}

func (s *userService) GetUserCount() (int, error) {
	return s.repo.GetCount()
}
