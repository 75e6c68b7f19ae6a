package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"washhub/database/repository"
	"washhub/models"
	bookingSvc "washhub/services/booking"
	ai "washhub/services/intelligence"
	"washhub/utils"
)

// PartnerHandler serves the operations dashboard: the bookings board, the
// walk-in log, status transitions, the revenue snapshot and the AI advisor.
type PartnerHandler struct {
	Bookings bookingSvc.Service
	Insights ai.InsightService
	Logger   *zap.Logger
}

func NewPartnerHandler(bookings bookingSvc.Service, insights ai.InsightService, logger *zap.Logger) *PartnerHandler {
	return &PartnerHandler{Bookings: bookings, Insights: insights, Logger: logger}
}

// ListBookingsHandler feeds the operations board. The dashboard polls this
// on an interval, so it always reflects the current collection.
func (h *PartnerHandler) ListBookingsHandler(c *gin.Context) {
	shopID := c.Param("shopId")
	bookings, err := h.Bookings.ListBookings(c.Request.Context(), shopID)
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.String("shopId", shopID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type walkInRequest struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

// LogWalkInHandler records an in-person job starting now. Walk-ins carry
// zero commission.
func (h *PartnerHandler) LogWalkInHandler(c *gin.Context) {
	shopID := c.Param("shopId")
	var req walkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	booking, err := h.Bookings.LogWalkIn(c.Request.Context(), shopID, req.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Shop or service not found", err.Error())
			return
		}
		h.Logger.Error("Failed to log walk-in", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to log walk-in", err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}

type statusUpdateRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateStatusHandler moves a booking along the board (Start Job, Mark
// Complete). Unknown booking ids acknowledge silently.
func (h *PartnerHandler) UpdateStatusHandler(c *gin.Context) {
	bookingID := c.Param("bookingId")
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Bookings.UpdateBookingStatus(c.Request.Context(), bookingID, req.Status); err != nil {
		h.Logger.Error("Failed to update booking status", zap.String("bookingId", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// RevenueHandler returns today's per-channel totals and the weekly
// projection for the shop.
func (h *PartnerHandler) RevenueHandler(c *gin.Context) {
	shopID := c.Param("shopId")
	stats, err := h.Bookings.ComputeRevenue(c.Request.Context(), shopID)
	if err != nil {
		h.Logger.Error("Failed to compute revenue", zap.String("shopId", shopID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute revenue", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// InsightHandler asks the advisor for one tip on today's numbers. The
// advisor is total: this endpoint always answers 200 with a non-empty tip,
// degrading to a fallback message when generation is not possible.
func (h *PartnerHandler) InsightHandler(c *gin.Context) {
	shopID := c.Param("shopId")
	stats, err := h.Bookings.ComputeRevenue(c.Request.Context(), shopID)
	if err != nil {
		h.Logger.Error("Failed to compute revenue for insight", zap.String("shopId", shopID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute revenue", err.Error())
		return
	}
	tip := h.Insights.Advise(c.Request.Context(), *stats)
	c.JSON(http.StatusOK, gin.H{"insight": tip})
}
