package handlers

import (
	"errors"
	"net/http"

	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.sendAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	user, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.Helper.SendError(c, http.StatusForbidden, map[string][]string{
				"email or password": {"is invalid"},
			})
			return
		}
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.authService.GetCurrentUser(middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "user")
			return
		}
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	user, err := h.authService.UpdateUser(middleware.CurrentUserID(c), req)
	if err != nil {
		h.sendAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) sendAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		h.Helper.SendUnprocessable(c, "email", "has already been taken")
	case errors.Is(err, services.ErrUsernameTaken):
		h.Helper.SendUnprocessable(c, "username", "has already been taken")
	case errors.Is(err, gorm.ErrRecordNotFound):
		h.Helper.SendNotFoundError(c, "user")
	default:
		h.Helper.SendInternalError(c, err)
	}
}
