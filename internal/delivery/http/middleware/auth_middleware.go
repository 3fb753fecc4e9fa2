package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kirana/internal/domain/entity"
	"kirana/internal/domain/service"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextSubjectID = "subjectID"
	ContextRole      = "role"
)

// AuthMiddleware provides middleware for session token authentication and
// role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Set session info on the context for handlers to use
		c.Set(ContextSubjectID, claims.SubjectID)
		c.Set(ContextRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the session carries a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleVal := c.Get(ContextRole)
			role, ok := roleVal.(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// SubjectID returns the authenticated profile id set by Authenticate.
func SubjectID(c echo.Context) string {
	id, _ := c.Get(ContextSubjectID).(string)
	return id
}
