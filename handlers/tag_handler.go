package handlers

import (
	"net/http"

	"conduit-api/helper"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

// GetTags returns the ten most used tag names, most popular first.
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.PopularTags()
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
