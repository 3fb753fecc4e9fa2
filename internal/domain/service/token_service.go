package service

import (
	"github.com/golang-jwt/jwt/v5"

	"kirana/internal/domain/entity"
)

// SessionClaims is the session object carried in a signed token: the
// authenticated role plus the id of the profile it belongs to. The admin
// session has no stored profile, so SubjectID carries the admin email there.
type SessionClaims struct {
	SubjectID string      `json:"sub_id"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a signed session token for a role surface.
	GenerateSessionToken(subjectID string, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns its session claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}
