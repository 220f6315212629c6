// api/middleware/auth.go

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/util"
)

// Authenticate verifies the bearer token and attaches the decoded identity to
// the request context for downstream gates and handlers.
func Authenticate(tokens *util.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			logger.Warn("No Authorization token provided",
				zap.String("path", c.Request.URL.Path))
			util.RespondError(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identity, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, pulse_errors.ErrTokenExpired) {
				message = "Token expired"
			}
			logger.Warn("Token verification failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path))
			util.RespondError(c, http.StatusUnauthorized, message)
			c.Abort()
			return
		}

		c.Set(util.IdentityContextKey, identity)
		c.Next()
	}
}

// AuthenticateOptional attaches an identity when a valid bearer token is
// present, and lets the request through anonymously otherwise.
func AuthenticateOptional(tokens *util.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if identity, err := tokens.VerifyAccess(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(util.IdentityContextKey, identity)
			}
		}
		c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// identity's role is in the allow-list declared for the route.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		identity, ok := util.GetIdentityFromContext(c)
		if !ok {
			util.RespondError(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}
		if _, ok := allowed[identity.Role]; !ok {
			logger.Warn("Role not permitted",
				zap.String("role", identity.Role),
				zap.String("path", c.Request.URL.Path))
			util.RespondError(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
