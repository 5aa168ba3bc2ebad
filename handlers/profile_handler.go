package handlers

import (
	"errors"
	"net/http"

	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, h *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: h}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Param("username"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) Follow(c *gin.Context) {
	profile, err := h.profileService.Follow(c.Param("username"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) Unfollow(c *gin.Context) {
	profile, err := h.profileService.Unfollow(c.Param("username"), middleware.CurrentUserID(c))
	if err != nil {
		h.sendProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *ProfileHandler) sendProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		h.Helper.SendNotFoundError(c, "profile")
	case errors.Is(err, services.ErrSelfFollow):
		h.Helper.SendUnprocessable(c, "username", "cannot follow yourself")
	default:
		h.Helper.SendInternalError(c, err)
	}
}
