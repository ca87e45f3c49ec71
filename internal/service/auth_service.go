package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nkale/homeboard/internal/apperr"
	"github.com/nkale/homeboard/internal/auth"
	"github.com/nkale/homeboard/internal/models"
)

// AuthService handles registration and login.
type AuthService struct {
	authenticator *auth.PasswordAuthenticator
	jwt           *auth.JWTManager
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator *auth.PasswordAuthenticator, jwt *auth.JWTManager) *AuthService {
	return &AuthService{authenticator: authenticator, jwt: jwt}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, apperr.New(apperr.KindValidation, "email, name and password are required")
	}

	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		return nil, err
	}

	slog.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates the user and issues a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, apperr.New(apperr.KindValidation, "email and password are required")
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return "", nil, err
	}

	slog.Info("User logged in", "user_id", user.ID)
	return token, user, nil
}
