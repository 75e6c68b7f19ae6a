package booking

import (
	"context"
	"fmt"
	"time"

	"washhub/database/repository"
	"washhub/models"
)

const walkInGuestName = "Walk-in Guest"

func (s *DefaultBookingService) ListBookings(ctx context.Context, shopID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// CreateBooking resolves the draft against the catalog, copies the current
// service price into the booking and derives the marketplace commission.
// The stored price never changes afterwards, even if the catalog entry is
// repriced.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	sh, err := s.ShopRepo.GetByID(draft.ShopID)
	if err != nil {
		return nil, fmt.Errorf("shop %q: %w", draft.ShopID, err)
	}
	svc := sh.ServiceByID(draft.ServiceID)
	if svc == nil {
		return nil, fmt.Errorf("service %q at shop %q: %w", draft.ServiceID, draft.ShopID, repository.ErrNotFound)
	}

	status := draft.Status
	if status == "" {
		status = defaultStatus(draft.Source)
	}
	startTime := draft.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}

	b := models.Booking{
		ShopID:       draft.ShopID,
		CustomerName: draft.CustomerName,
		ServiceID:    draft.ServiceID,
		StartTime:    startTime,
		Status:       status,
		Source:       draft.Source,
		Price:        svc.Price,
		Commission:   commissionFor(draft.Source, svc.Price, sh.CommissionRate),
	}
	stored, err := s.BookingRepo.Insert(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}
	return stored, nil
}

// LogWalkIn records an in-person job the partner starts immediately. The
// shop keeps the full amount; walk-ins carry no marketplace fee.
func (s *DefaultBookingService) LogWalkIn(ctx context.Context, shopID, serviceID string) (*models.Booking, error) {
	return s.CreateBooking(ctx, models.BookingDraft{
		ShopID:       shopID,
		CustomerName: walkInGuestName,
		ServiceID:    serviceID,
		StartTime:    time.Now(),
		Source:       models.SourceWalkIn,
		Status:       models.StatusInProgress,
	})
}

// UpdateBookingStatus sets the new status without checking transition
// legality; the partner board only ever issues forward moves, and an
// unknown id silently succeeds.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	return s.BookingRepo.UpdateStatus(id, status)
}

func defaultStatus(source models.BookingSource) models.BookingStatus {
	if source == models.SourceWalkIn {
		return models.StatusInProgress
	}
	return models.StatusConfirmed
}

func commissionFor(source models.BookingSource, price, rate float64) float64 {
	if source == models.SourceWalkIn {
		return 0
	}
	return price * rate / 100
}
