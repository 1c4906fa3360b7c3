package service

import (
	"context"
	"errors"
	"fmt"

	"devconnect/internal/gravatar"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/token"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates the user and returns a freshly issued session token.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return "", repository.ErrDuplicateEmail
	}

	user := &models.User{
		Name:   name,
		Email:  email,
		Avatar: gravatar.URL(email),
	}

	err = s.userRepo.CreateUser(ctx, user, password)
	if err != nil {
		return "", err
	}

	// no transaction spans create+sign: a signer failure here leaves the
	// user record in place and surfaces as a server error
	tokenString, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return "", err
	}

	tokenString, err := s.tokens.Issue(user.UserID)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
