package auth

import (
	"fmt"
	"time"

	"caregiver-shifts-backend/internal/config"
)

// AuthConfig holds the token settings for the application
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
	// AllowIssue enables POST /auth/token. It is never enabled in production.
	AllowIssue bool
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) (*AuthConfig, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	ttl := cfg.TokenTTL()
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		TokenTTL:   ttl,
		AllowIssue: !cfg.IsProduction(),
	}, nil
}
