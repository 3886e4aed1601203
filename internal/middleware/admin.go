package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harentsoaR/doctors-portal/internal/repository"
)

// RequireAdmin lets the request through only when the verified caller is a
// stored user with the admin role. It must run after VerifyToken. An unknown
// caller is treated like a non-admin.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := CallerEmail(c)
		requester, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("email", email).Msg("admin lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify role"})
			return
		}
		if !requester.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Request"})
			return
		}
		c.Next()
	}
}
