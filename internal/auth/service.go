package auth

import (
	"fmt"
	"time"

	apperrors "caregiver-shifts-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the kind of principal acting on shifts
type Role string

const (
	RoleCaregiver  Role = "caregiver"
	RoleFamily     Role = "family"
	RoleSupervisor Role = "supervisor"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleCaregiver, RoleFamily, RoleSupervisor:
		return true
	}
	return false
}

// Principal is the authenticated caller. For caregivers Subject is the caregiver id.
type Principal struct {
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Name                 string `json:"name" example:"Ana Souza"`
	Role                 Role   `json:"role" example:"caregiver"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Principal returns the caller described by the claims
func (c *AuthClaims) Principal() *Principal {
	return &Principal{Subject: c.Subject, Name: c.Name, Role: c.Role}
}

// TokenResponse is returned when a token is issued
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthService issues and validates HS256 bearer tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(config *AuthConfig) *AuthService {
	return &AuthService{config: config, now: time.Now}
}

// GenerateJWT creates a signed token for p
func (s *AuthService) GenerateJWT(p *Principal) (*TokenResponse, error) {
	if p == nil || p.Subject == "" {
		return nil, apperrors.NewValidationError("subject", "subject is required")
	}
	if !p.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "role must be caregiver, family or supervisor")
	}

	now := s.now()
	expires := now.Add(s.config.TokenTTL)
	claims := &AuthClaims{
		Name: p.Name,
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   p.Subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL / time.Second),
		ExpiresAt:   expires,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	opts := []jwt.ParserOption{jwt.WithTimeFunc(s.now)}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" || !claims.Role.IsValid() {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
