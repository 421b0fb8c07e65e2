package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mpetrov/recipebox/backend/internal/types"
)

// ErrVerifierUnavailable is returned by a TokenValidator that cannot verify
// anything at all (missing signing secret). The gate maps it to a 500 rather
// than a 401: the caller's token may be perfectly fine.
var ErrVerifierUnavailable = errors.New("authentication service is not configured")

// TokenValidator is an interface for validating bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware creates a middleware that validates bearer tokens. It is a
// mandatory gate: every recipe route runs it before any handler logic, and it
// re-verifies the token on every request.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "No authorization header provided")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "Invalid authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortWithError(c, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			if errors.Is(err, ErrVerifierUnavailable) {
				abortWithError(c, http.StatusInternalServerError, "Failed to initialize authentication service")
				return
			}
			abortWithError(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		// Token verified but principal incomplete
		if claims.UserID == uuid.Nil {
			abortWithError(c, http.StatusForbidden, "User not found")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// CurrentUserID returns the authenticated principal's id from the request
// context. The second return is false when the auth gate did not run.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": message}})
}
