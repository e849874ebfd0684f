package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/doctors-portal-api/internal/utils"
)

// PrincipalKey is the context key holding the verified principal's email.
const PrincipalKey = "principalEmail"

// Identify verifies an optional bearer token. A missing, malformed or forged
// token is not an error: the request continues as anonymous and the
// per-endpoint guards decide what anonymous callers may do.
func Identify(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateJWT(tokenString, secret); err == nil {
				c.Set(PrincipalKey, claims.Email)
			}
		}
		c.Next()
	}
}

// Principal returns the verified email for the current request, if any.
func Principal(c *gin.Context) (string, bool) {
	email := c.GetString(PrincipalKey)
	return email, email != ""
}
