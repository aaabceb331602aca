package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"crystalis-cms/internal/domain"
	"crystalis-cms/internal/service"
)

// AuthHandler mantiene dependencias para los endpoints de sesión del panel.
type AuthHandler struct {
	logger *zap.Logger
	admins *service.AdminService
	tokens *service.AuthTokenService
}

func NewAuthHandler(logger *zap.Logger, admins *service.AdminService, tokens *service.AuthTokenService) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		admins: admins,
		tokens: tokens,
	}
}

func publicUser(user domain.AdminUser) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Login maneja POST /admin/auth/login.
//
// Credenciales rechazadas responden 200 con {success:false, message}: el
// cliente del panel muestra el message y distingue eso de una falla de red.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request"})
		return
	}

	user, err := h.admins.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not login"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user":  publicUser(user),
			"token": token,
		},
	})
}

// Verify maneja GET /admin/auth/verify (autorizado). Revalida que la cuenta
// del token siga existiendo; un token firmado de una cuenta dada de baja no
// verifica.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
		return
	}
	user, err := h.admins.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}
		h.logger.Error("verify lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "could not verify"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user": publicUser(user),
		},
	})
}

// Logout maneja POST /auth/logout (autorizado). Revoca el jti del token;
// una falla del store se loguea y el endpoint responde éxito igual, el
// cliente limpia su sesión de todas formas.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := GetAuthToken(c)
	if ok {
		if err := h.tokens.Revoke(token); err != nil {
			h.logger.Warn("token revoke failed", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
