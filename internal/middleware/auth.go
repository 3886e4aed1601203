package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/utils"
)

// EmailKey is the gin context key holding the verified caller's email.
const EmailKey = "email"

// VerifyToken requires an Authorization header carrying a valid access
// token. A missing header is 401; anything that does not validate is 403.
func VerifyToken(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "UnAuthorized Access"})
			return
		}

		var tokenString string
		if parts := strings.Fields(authHeader); len(parts) > 1 {
			tokenString = parts[1]
		}
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// CallerEmail returns the email stored by VerifyToken.
func CallerEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}
