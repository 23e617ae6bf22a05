package handlers

import (
	"net/http"
	"strconv"

	"banner-service/helper"
	"banner-service/services"

	"github.com/gin-gonic/gin"
)

type FeatureHandler struct {
	featureService services.FeatureService
	Helper         *helper.HTTPHelper
}

func NewFeatureHandler(featureService services.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	feature, err := h.featureService.CreateFeature(isAdmin(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feature)
}

func (h *FeatureHandler) GetFeatures(c *gin.Context) {
	features, err := h.featureService.GetFeatures()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, features)
}

func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid feature id")
		return
	}

	if err := h.featureService.DeleteFeature(uint(id), isAdmin(c)); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
