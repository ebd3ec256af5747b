package middleware

import (
	"net/http"
	"strings"

	"restaurant-order-service/pkg/token"
	"restaurant-order-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "userID"

// AuthMiddleware verifies the bearer access token. A missing token is
// 401; a token that fails verification (bad signature, expired,
// malformed) is 403. Clients depend on that split.
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := issuer.VerifyAccess(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)

		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, zero if the request
// did not pass the auth middleware.
func CurrentUserID(c *gin.Context) uint {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
