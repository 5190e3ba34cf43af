package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: invalid passphrase")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// OwnerSubject is the JWT subject of the single owner of this deployment.
const OwnerSubject = "owner"

// --- Service Interface ---
type AuthService interface {
	Login(ctx context.Context, passphrase string) (token string, expiresAt time.Time, err error)
	GetJWTSecret() string
}

// --- Service Implementation ---

// authService checks the owner passphrase against a bcrypt hash and issues HS256 tokens.
type authService struct {
	passphraseHash []byte
	jwtSecret      string
	jwtExpiration  time.Duration
	now            func() time.Time
}

// NewAuthService creates a new instance of authService.
func NewAuthService(passphraseHash, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 1
	}
	return &authService{
		passphraseHash: []byte(passphraseHash),
		jwtSecret:      jwtSecret,
		jwtExpiration:  jwtExpiration,
		now:            time.Now,
	}
}

// Login handles passphrase authentication and JWT generation.
func (s *authService) Login(ctx context.Context, passphrase string) (string, time.Time, error) {
	if passphrase == "" {
		return "", time.Time{}, ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(passphrase)); err != nil {
		return "", time.Time{}, ErrAuthenticationFailed
	}

	expiresAt := s.now().Add(s.jwtExpiration)
	token, err := s.generateJWT(expiresAt)
	if err != nil {
		return "", time.Time{}, ErrTokenGeneration
	}
	return token, expiresAt, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(expiresAt time.Time) (string, error) {
	claims := &jwtClaims{
		Scope: "gym",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   OwnerSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			Issuer:    "ast-gym",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
