package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"company-registry/internal/domain/auth"
	"company-registry/internal/pkg/cookie"
	"company-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth is the single gate in front of every protected route. All
// failure modes (missing, malformed, expired, dangling subject) produce the
// same 401 body so callers learn nothing about why a token was rejected.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		ident, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, ident)
		c.Next()
	}
}

// GetIdentity returns the authenticated identity set by RequireAuth.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(ctxIdentityKey)
	if !exists {
		return auth.Identity{}, false
	}

	ident, ok := value.(auth.Identity)
	return ident, ok
}
