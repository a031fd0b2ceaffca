package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"store-reservation/internal/domain/user"
	"store-reservation/internal/pkg/cookie"
	"store-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectIDKey = "subject_id"
	ctxRoleKey      = "subject_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subjectID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectIDKey, subjectID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"subject_id": subjectID,
			"role":       string(role),
		})
		c.Next()
	}
}

// RequireRole restricts a route to one account kind. Users and partners
// live in separate tables, so there is no hierarchy; the role must match
// exactly. Must be used after RequireAuth().
func (m *AuthMiddleware) RequireRole(required user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != required {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetSubjectID(c *gin.Context) (string, bool) {
	subjectID, exists := c.Get(ctxSubjectIDKey)
	if !exists {
		return "", false
	}

	id, ok := subjectID.(string)
	return id, ok
}

func GetRole(c *gin.Context) (user.Role, bool) {
	subjectRole, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := subjectRole.(user.Role)
	return role, ok
}
