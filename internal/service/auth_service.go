package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/publications-api/internal/config"
	"github.com/publications-api/internal/models"
	"github.com/publications-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users repository.UserRepository
	cfg   *config.AuthConfig
	log   zerolog.Logger
}

func newAuthService(users repository.UserRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users: users,
		cfg:   cfg,
		log:   log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new account with a bcrypt-hashed password and
// returns the assigned user ID. Duplicate usernames are rejected.
func (s *authService) Register(ctx context.Context, username, password string) (string, error) {
	exists, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", username).Msg("User registered")
	return user.ID, nil
}

// Login verifies the credentials and issues a signed HS256 token that
// expires after the configured TTL. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("Login succeeded")
	return signed, nil
}
