package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"washhub/database/repository"
	"washhub/models"
	bookingSvc "washhub/services/booking"
	shopSvc "washhub/services/shop"
	"washhub/utils"
)

// CustomerHandler serves the customer portal: browse verified shops, pick
// a service, and check out an app booking.
type CustomerHandler struct {
	Shops    shopSvc.Service
	Bookings bookingSvc.Service
	Logger   *zap.Logger
}

func NewCustomerHandler(shops shopSvc.Service, bookings bookingSvc.Service, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Shops: shops, Bookings: bookings, Logger: logger}
}

// ListShopsHandler returns the verified catalog only; shops pending
// approval never reach customers.
func (h *CustomerHandler) ListShopsHandler(c *gin.Context) {
	shops, err := h.Shops.ListShops(c.Request.Context(), true)
	if err != nil {
		h.Logger.Error("Failed to list shops", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list shops", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}

// GetShopHandler returns one shop's detail page payload.
func (h *CustomerHandler) GetShopHandler(c *gin.Context) {
	id := c.Param("shopId")
	sh, err := h.Shops.GetShop(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shop not found", id)
			return
		}
		h.Logger.Error("Failed to get shop", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get shop", err.Error())
		return
	}
	c.JSON(http.StatusOK, sh)
}

type checkoutRequest struct {
	ShopID       string `json:"shopId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	ServiceID    string `json:"serviceId" binding:"required"`
	StartTime    string `json:"startTime"` // RFC 3339; defaults to now
}

// CreateBookingHandler is the checkout step: it creates a CONFIRMED
// app-sourced booking with the price copied from the catalog and the
// marketplace commission applied.
func (h *CustomerHandler) CreateBookingHandler(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	var startTime time.Time
	if req.StartTime != "" {
		var err error
		startTime, err = time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid startTime", "expected RFC 3339 timestamp")
			return
		}
	}

	booking, err := h.Bookings.CreateBooking(c.Request.Context(), models.BookingDraft{
		ShopID:       req.ShopID,
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		StartTime:    startTime,
		Source:       models.SourceApp,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shop or service not found", err.Error())
			return
		}
		h.Logger.Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}
