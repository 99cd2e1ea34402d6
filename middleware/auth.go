package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"doctors-portal-server/services"
	"doctors-portal-server/util"
)

// EmailKey is where the authentication stage leaves the verified identity.
const EmailKey = "email"

// AdminChecker answers whether an email belongs to an admin user. Satisfied
// by services.UserService.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

/*
* Authentication stage
* No Authorization header at all is 401, before any parsing
* A malformed or failed bearer token is 403
* Success leaves the verified email in the context
 */
func RequireToken(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				util.FailedMessage(util.UNAUTHORIZED_ACCESS))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				util.FailedMessage(util.FORBIDDEN_ACCESS))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				util.FailedMessage(util.FORBIDDEN_ACCESS))
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

/*
* Authorization stage, only on elevated routes and always after RequireToken
* Looks the authenticated identity up and requires the admin role
 */
func RequireAdmin(users AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				util.FailedResponse(err))
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				util.FailedMessage(util.FORBIDDEN_ACCESS))
			return
		}
		c.Next()
	}
}
