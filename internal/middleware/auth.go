package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive-api/internal/api/dto"
	"github.com/taskhive/taskhive-api/internal/auth"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/utils"
)

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// JWTAuth verifies the bearer token and stores the typed claims plus the
// derived tenant scope in the gin context. A super admin carries no tenant
// and therefore gets an unscoped view.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.NewError("authorization header is required"))
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, dto.NewError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(bearerToken[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewError("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(string(utils.ClaimsKey), claims)
		c.Set(string(utils.ScopeKey), utils.Scope{TenantID: claims.TenantID})
		c.Next()
	}
}

// RequireRole rejects callers whose role is not one of the given roles.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(string(utils.ClaimsKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("no authentication found"))
			return
		}

		claims, ok := value.(*auth.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewError("invalid claims type"))
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewError("insufficient permissions"))
	}
}
