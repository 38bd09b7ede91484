package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/pkg/jwt"
	"gitops-dashboard/pkg/constants"
	"gitops-dashboard/pkg/responses"
)

// Context keys set by JWTAuth.
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// JWTAuth rejects requests without a valid access token.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constants.HeaderBearerPrefix) {
			responses.Error(c, responses.ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(strings.TrimPrefix(header, constants.HeaderBearerPrefix))
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}
		if claims.Type != constants.JWTTypeAccess {
			responses.Error(c, responses.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
