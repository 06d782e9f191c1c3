package services

import (
	"fmt"

	"github.com/royalacademy/academy-go/internal/infrastructure/observability/logging"
	"github.com/royalacademy/academy-go/internal/infrastructure/security"
	"github.com/royalacademy/academy-go/pkg/config"
)

// ErrInvalidCredentials is returned for a wrong password; callers map it to
// an unauthorized response without leaking which check failed.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// AuthService verifies the admin password and mints the session token the
// editor UI carries on every mutating call.
type AuthService struct {
	logger *logging.ChanneledLogger
}

// NewAuthService creates the admin authentication service.
func NewAuthService(logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{logger: logger}
}

// Login checks password against the configured bcrypt hash and returns a
// signed admin JWT.
func (s *AuthService) Login(password string) (string, error) {
	if config.AdminPasswordHash == "" {
		s.logger.Auth().Error("Admin login attempted with no ADMIN_PASSWORD_HASH configured")
		return "", fmt.Errorf("admin authentication is not configured")
	}

	if !security.CheckPassword(config.AdminPasswordHash, password) {
		s.logger.Auth().Warn("Admin login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := security.GenerateAdminToken(config.JWTSecret, config.TokenLifetime)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}

	s.logger.Auth().Info("Admin login accepted")
	return token, nil
}

// Validate checks a bearer token and reports whether it carries admin role.
func (s *AuthService) Validate(token string) bool {
	claims, err := security.ValidateJWT(token, config.JWTSecret)
	if err != nil {
		return false
	}
	return security.IsAdminClaims(claims)
}
