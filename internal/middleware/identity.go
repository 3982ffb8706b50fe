package middleware

import (
	"net/http"
	"strconv"
	"strings"

	jwtsvc "guesthouse/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Identity resolves the caller from the plain integer `user-id` header.
// Authentication proper is out of scope; the header value is trusted as-is.
// A Bearer token issued by the login endpoint is accepted as a fallback
// source of identity for clients that prefer it.
func Identity(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("user-id"); raw != "" {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || id <= 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INVALID_USER_ID",
						"message": "user-id header must be a positive integer",
					},
				})
				return
			}
			c.Set("user_id", id)
			c.Next()
			return
		}

		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}

		c.Next()
	}
}

// RequireUser rejects requests that carry no caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetInt64("user_id") == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Missing user-id header",
				},
			})
			return
		}
		c.Next()
	}
}
