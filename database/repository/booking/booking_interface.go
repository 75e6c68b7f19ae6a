package booking

import (
	"context"

	"washhub/models"
)

// Repository defines access to the booking collection.
type Repository interface {
	// GetByShop returns all bookings for one shop, newest first.
	GetByShop(ctx context.Context, shopID string) ([]models.Booking, error)
	// Insert assigns a fresh unique id, prepends the booking and returns
	// the stored record.
	Insert(ctx context.Context, b models.Booking) (*models.Booking, error)
	// UpdateStatus replaces the status of the matching booking. An unknown
	// id is a silent no-op.
	UpdateStatus(id string, status models.BookingStatus) error
}
