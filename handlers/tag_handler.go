package handlers

import (
	"net/http"
	"strconv"

	"banner-service/helper"
	"banner-service/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	tag, err := h.tagService.CreateTag(isAdmin(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid tag id")
		return
	}

	if err := h.tagService.DeleteTag(uint(id), isAdmin(c)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
