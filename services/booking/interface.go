package booking

import (
	"context"

	bookingRepo "washhub/database/repository/booking"
	shopRepo "washhub/database/repository/shop"
	"washhub/models"
)

// Service defines the booking engine exposed to the portals: the booking
// lifecycle plus the derived revenue snapshot the insight advisor reads.
type Service interface {
	ListBookings(ctx context.Context, shopID string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	LogWalkIn(ctx context.Context, shopID, serviceID string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
	ComputeRevenue(ctx context.Context, shopID string) (*models.RevenueStats, error)
}

// ProjectionFactors scale today's totals into the weekly projection. They
// are placeholder heuristics with no statistical meaning, so they live in
// configuration rather than in the arithmetic.
type ProjectionFactors struct {
	WeekApp    float64
	WeekWalkIn float64
}

// DefaultBookingService implements Service over the in-memory repositories.
type DefaultBookingService struct {
	ShopRepo    shopRepo.Repository
	BookingRepo bookingRepo.Repository
	Projection  ProjectionFactors
}
