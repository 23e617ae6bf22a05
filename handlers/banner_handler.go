package handlers

import (
	"net/http"
	"strconv"

	"banner-service/helper"
	"banner-service/models"
	"banner-service/services"

	"github.com/gin-gonic/gin"
)

type BannerHandler struct {
	bannerService services.BannerService
	Helper        *helper.HTTPHelper
}

func NewBannerHandler(bannerService services.BannerService) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

func isAdmin(c *gin.Context) bool {
	admin, _ := c.Get("is_admin")
	flag, ok := admin.(bool)
	return ok && flag
}

func (h *BannerHandler) GetUserBanner(c *gin.Context) {
	var params models.UserBannerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	banner, err := h.bannerService.GetUserBanner(c.Request.Context(), params.TagID, params.FeatureID, params.UseLastRevision, isAdmin(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BannerResponse{Content: banner.Content})
}

func (h *BannerHandler) GetBanners(c *gin.Context) {
	var params models.BannerListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	banners, err := h.bannerService.GetBanners(params, isAdmin(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, banners)
}

func (h *BannerHandler) CreateBanner(c *gin.Context) {
	var req models.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	id, err := h.bannerService.CreateBanner(req, isAdmin(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"banner_id": id})
}

func (h *BannerHandler) UpdateBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid banner id")
		return
	}

	var patch models.PatchBannerRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.bannerService.UpdateBanner(uint(id), patch, isAdmin(c)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": "OK"})
}

func (h *BannerHandler) DeleteBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid banner id")
		return
	}

	if err := h.bannerService.DeleteBanner(uint(id), isAdmin(c)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBanners accepts the bulk removal request and returns before the
// matching banners are gone.
func (h *BannerHandler) DeleteBanners(c *gin.Context) {
	var params models.BulkDeleteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.bannerService.DeleteBannersByTagOrFeature(params, isAdmin(c)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
