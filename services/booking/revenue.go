package booking

import (
	"context"
	"fmt"

	"washhub/models"
)

// ComputeRevenue partitions a shop's bookings by source and sums the price
// per channel, skipping cancelled bookings on both sides. The demo dataset
// is "today" by construction, so no date filtering is applied. The week
// figures are today's totals scaled by the configured projection factors.
func (s *DefaultBookingService) ComputeRevenue(ctx context.Context, shopID string) (*models.RevenueStats, error) {
	bookings, err := s.BookingRepo.GetByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	var todayApp, todayWalkIn float64
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		switch b.Source {
		case models.SourceApp:
			todayApp += b.Price
		case models.SourceWalkIn:
			todayWalkIn += b.Price
		}
	}

	return &models.RevenueStats{
		TodayApp:    todayApp,
		TodayWalkIn: todayWalkIn,
		WeekApp:     todayApp * s.Projection.WeekApp,
		WeekWalkIn:  todayWalkIn * s.Projection.WeekWalkIn,
	}, nil
}
