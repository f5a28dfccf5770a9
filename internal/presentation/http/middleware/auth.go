package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
	"github.com/sumashijiru045-dot/pos-app/pkg/utils"
)

// AuthMiddleware validates the operator's bearer token on mutating routes.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator", claims.Operator)
		c.Next()
	}
}
