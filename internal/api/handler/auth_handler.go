package handler

import (
	"github.com/gin-gonic/gin"

	"gitops-dashboard/internal/api/middleware"
	"gitops-dashboard/internal/dto"
	"gitops-dashboard/internal/service"
	"gitops-dashboard/pkg/responses"
	"gitops-dashboard/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	tokens, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, tokens)
}

// RefreshToken exchanges a refresh token for a new pair.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, utils.FormatValidationError(err), utils.ValidationFields(err))
		return
	}

	tokens, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, tokens)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	info, err := h.authService.GetUserInfo(username)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.OK(c, info)
}
