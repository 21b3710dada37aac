package middleware

import (
	"context"
	"net/http"
	"strings"

	"starwars/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware verifies the Bearer token, rejects blacklisted tokens when
// redis is available, and puts user_id into the request context.
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header", "code": "unauthorized"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if rdb != nil {
			_, err := rdb.Get(context.Background(), "blacklist:"+token).Result()
			if err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked", "code": "unauthorized"})
				c.Abort()
				return
			}
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "unauthorized"})
			c.Abort()
			return
		}
		userID, ok := utils.UserIDFromClaims(claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload", "code": "unauthorized"})
			c.Abort()
			return
		}
		c.Set("user_id", int(userID))
		c.Next()
	}
}
