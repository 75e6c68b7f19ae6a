package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"washhub/database/repository"
	shopSvc "washhub/services/shop"
	"washhub/utils"
)

// AdminHandler serves the admin console: the full catalog, pending shops
// included, and the approval action.
type AdminHandler struct {
	Shops  shopSvc.Service
	Logger *zap.Logger
}

func NewAdminHandler(shops shopSvc.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Shops: shops, Logger: logger}
}

// ListShopsHandler returns every shop on the platform, verified or not.
func (h *AdminHandler) ListShopsHandler(c *gin.Context) {
	shops, err := h.Shops.ListShops(c.Request.Context(), false)
	if err != nil {
		h.Logger.Error("Failed to list shops", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list shops", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// ApproveShopHandler verifies a pending shop. The mutation is visible to
// every subsequent reader, customer listing included.
func (h *AdminHandler) ApproveShopHandler(c *gin.Context) {
	id := c.Param("shopId")
	if err := h.Shops.ApproveShop(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shop not found", id)
			return
		}
		h.Logger.Error("Failed to approve shop", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to approve shop", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved": true})
}
