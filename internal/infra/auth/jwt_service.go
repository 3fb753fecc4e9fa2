// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kirana/config"
	"kirana/internal/domain/entity"
	"kirana/internal/domain/service"
	"kirana/internal/errors"
)

// sessionTTL bounds how long a role session stays valid. The original app
// kept sessions until logout; a day is close enough for a demo service.
const sessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Session,
		ttl:    sessionTTL,
	}, nil
}

// GenerateSessionToken creates a signed session token carrying the role and
// the id of the profile it belongs to.
func (s *jwtService) GenerateSessionToken(subjectID string, role entity.Role) (string, error) {
	now := time.Now()
	claims := service.SessionClaims{
		SubjectID: subjectID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateToken checks a token string and returns its session claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if !claims.Role.IsValid() {
		return nil, errors.New("unknown role in session token")
	}

	return claims, nil
}
