package routes

import (
	"github.com/gin-gonic/gin"

	"washhub/handlers"
	"washhub/middleware"
	"washhub/models"
)

// RegisterCustomerRoutes registers the customer portal endpoints.
func RegisterCustomerRoutes(r *gin.Engine, h *handlers.CustomerHandler) {
	api := r.Group("/api/customer", middleware.RequireRole(models.RoleCustomer))
	{
		api.GET("/shops", h.ListShopsHandler)
		api.GET("/shops/:shopId", h.GetShopHandler)
		api.POST("/bookings", h.CreateBookingHandler)
	}
}

// RegisterPartnerRoutes registers the operations dashboard endpoints.
func RegisterPartnerRoutes(r *gin.Engine, h *handlers.PartnerHandler) {
	api := r.Group("/api/partner", middleware.RequireRole(models.RolePartner))
	{
		api.GET("/shops/:shopId/bookings", h.ListBookingsHandler)
		api.POST("/shops/:shopId/walk-ins", h.LogWalkInHandler)
		api.PATCH("/bookings/:bookingId/status", h.UpdateStatusHandler)
		api.GET("/shops/:shopId/revenue", h.RevenueHandler)
		api.GET("/shops/:shopId/insight", h.InsightHandler)
	}
}

// RegisterAdminRoutes registers the admin console endpoints.
func RegisterAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	api := r.Group("/api/admin", middleware.RequireRole(models.RoleAdmin))
	{
		api.GET("/shops", h.ListShopsHandler)
		api.POST("/shops/:shopId/approve", h.ApproveShopHandler)
	}
}

// RegisterRoutes wires every portal plus the health probe.
func RegisterRoutes(r *gin.Engine, customer *handlers.CustomerHandler, partner *handlers.PartnerHandler, admin *handlers.AdminHandler) {
	r.GET("/health", handlers.HealthHandler)
	RegisterCustomerRoutes(r, customer)
	RegisterPartnerRoutes(r, partner)
	RegisterAdminRoutes(r, admin)
}
