package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"crystalis-cms/internal/service"
)

const (
	authClaimsKey = "auth_claims"
	authTokenKey  = "auth_token"
)

// BearerAuthMiddleware valida el bearer token del panel y guarda claims y
// token crudo en el contexto. Responde con el sobre {success:false} que
// espera el cliente del panel.
func BearerAuthMiddleware(tokens *service.AuthTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokens == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Set(authTokenKey, token)
		c.Next()
	}
}

// GetAuthClaims obtiene los claims del contexto.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}

// GetAuthToken obtiene el token crudo del contexto (lo usa logout).
func GetAuthToken(c *gin.Context) (string, bool) {
	val, ok := c.Get(authTokenKey)
	if !ok {
		return "", false
	}
	token, ok := val.(string)
	return token, ok
}
