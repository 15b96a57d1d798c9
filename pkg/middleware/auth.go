package middleware

import (
	"net/http"
	"strings"

	"fisher-blog-api/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionChecker reports whether a live session record exists for a user.
// A valid signature alone is not enough to pass the guard: logged-out users
// carry structurally valid tokens with no session row behind them.
type SessionChecker interface {
	HasSession(userID string) (bool, error)
}

func AuthMiddleware(jwtService *jwt.Service, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1], jwt.KindAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if sessions != nil {
			ok, err := sessions.HasSession(claims.UserID)
			if err != nil || !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("is_activated", claims.IsActivated)
		c.Next()
	}
}
