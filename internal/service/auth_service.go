package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/natureshield/natureshield-backend/internal/auth"
	"github.com/natureshield/natureshield-backend/internal/domain"
)

// AuthService handles signup, login, and identity lookups
type AuthService struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Signup registers a new user with a bcrypt-hashed password. Duplicate
// emails (case-insensitive) return domain.ErrUserAlreadyExists.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return err
	}
	return nil
}

// Login checks the credentials and returns a signed identity token.
// Unknown emails return domain.ErrUserNotFound; a wrong password returns
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Email, user.ID.String())
}

// GetUserByEmail returns the account for a verified identity's email.
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}
