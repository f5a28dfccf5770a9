package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
)

// AuthHandler handles operator authentication
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges the operator PIN for an access token
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		PIN string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	token, err := h.authService.Login(req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{"access_token": token})
}
