// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"crypto/md5"
	"fmt"
	"strings"

	"devlink/internal/models"
	"devlink/internal/repository"
	"devlink/internal/token"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and session resolution.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// GravatarURL derives the avatar URL for an email address.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}

// Register creates a new user account and returns a session token.
// Duplicate email answers with "User already exist", matching what clients
// display on the signup form. A race past these pre-checks is caught by the
// store's unique constraints, which the repository reports as the same
// conflicts.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.NewConflictError("User already exist")
	}

	taken, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return "", err
	}
	if taken != nil {
		return "", models.NewConflictError("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	user := &models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Avatar:   GravatarURL(in.Email),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return accessToken, nil
}

// Login verifies the credentials and returns a session token. Wrong email and
// wrong password answer identically so the response never reveals which
// one failed.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", models.NewUnauthorizedError("Invalid Credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", models.NewUnauthorizedError("Invalid Credentials")
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return accessToken, nil
}

// GetAuthUser returns the caller's user record. The password hash never
// serializes, so the handler can return the struct directly.
func (s *AuthService) GetAuthUser(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
