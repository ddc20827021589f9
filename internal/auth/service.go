package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"techstore/internal/config"
)

// Scope is the caller's identity and role context for one request. It is
// derived fresh per request and discarded afterwards.
type Scope struct {
	SubjectID uint
	Role      string
	anonymous bool
}

// Anonymous returns the scope of an unauthenticated caller
func Anonymous() Scope {
	return Scope{anonymous: true}
}

// Identified returns the scope of an authenticated caller
func Identified(subjectID uint, role string) Scope {
	return Scope{SubjectID: subjectID, Role: role}
}

// IsAnonymous reports whether the scope carries no identity
func (s Scope) IsAnonymous() bool {
	return s.anonymous
}

// HasRole reports whether the scope is identified with one of the given roles
func (s Scope) HasRole(roles ...string) bool {
	if s.anonymous {
		return false
	}
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}

// Claims are the JWT claims carried by an access token
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and validates access tokens and hashes passwords
type Service struct {
	config config.AuthConfig
}

// NewService creates a new auth service
func NewService(cfg config.AuthConfig) *Service {
	return &Service{config: cfg}
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	return string(bytes), err
}

// CheckPassword compares a password with its hash
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken creates a signed JWT for the user
func (s *Service) GenerateToken(userID uint, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.config.TokenDuration)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken parses and validates a JWT, returning its claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
