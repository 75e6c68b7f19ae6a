package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"washhub/database/repository"
	bookingRepo "washhub/database/repository/booking"
	shopRepo "washhub/database/repository/shop"
	"washhub/models"
)

func demoCatalog() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Express Wash", DurationMinutes: 30, Price: 350},
		{ID: "s2", Name: "Premium Interior", DurationMinutes: 60, Price: 850},
	}
}

func newTestService(shops []models.Shop, bookings []models.Booking) *DefaultBookingService {
	return &DefaultBookingService{
		ShopRepo:    shopRepo.NewMemoryShopRepo(shops, 0),
		BookingRepo: bookingRepo.NewMemoryBookingRepo(bookings, 0, 0),
		Projection:  ProjectionFactors{WeekApp: 5.2, WeekWalkIn: 4.8},
	}
}

func cochinShop() models.Shop {
	return models.Shop{
		ID:             "shop1",
		Name:           "Cochin Car Care",
		IsVerified:     true,
		CommissionRate: 15,
		Services:       demoCatalog(),
	}
}

func TestCreateBookingCopiesPriceAndCommission(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)

	b, err := svc.CreateBooking(context.Background(), models.BookingDraft{
		ShopID:       "shop1",
		CustomerName: "Rahul K.",
		ServiceID:    "s1",
		Source:       models.SourceApp,
	})
	require.NoError(t, err)

	assert.Equal(t, 350.0, b.Price)
	assert.Equal(t, 350.0*15/100, b.Commission)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Equal(t, models.SourceApp, b.Source)
	assert.NotEmpty(t, b.ID)
}

func TestWalkInCarriesZeroCommission(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)

	b, err := svc.LogWalkIn(context.Background(), "shop1", "s2")
	require.NoError(t, err)

	assert.Equal(t, 850.0, b.Price)
	assert.Zero(t, b.Commission)
	assert.Equal(t, models.StatusInProgress, b.Status)
	assert.Equal(t, models.SourceWalkIn, b.Source)
	assert.Equal(t, "Walk-in Guest", b.CustomerName)
}

func TestCreateBookingUnknownShopIsNotFound(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)

	_, err := svc.CreateBooking(context.Background(), models.BookingDraft{
		ShopID:    "missing",
		ServiceID: "s1",
		Source:    models.SourceApp,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateBookingUnknownServiceIsNotFound(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)

	_, err := svc.CreateBooking(context.Background(), models.BookingDraft{
		ShopID:    "shop1",
		ServiceID: "s99",
		Source:    models.SourceApp,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateBookingKeepsPriceWhenCatalogChanges(t *testing.T) {
	// The booking price is a copy, not a reference: repricing the catalog
	// after checkout must not touch existing bookings.
	shops := []models.Shop{cochinShop()}
	svc := newTestService(shops, nil)

	b, err := svc.CreateBooking(context.Background(), models.BookingDraft{
		ShopID:       "shop1",
		CustomerName: "Anjali M.",
		ServiceID:    "s1",
		Source:       models.SourceApp,
	})
	require.NoError(t, err)

	shops[0].Services[0].Price = 9999

	listed, err := svc.ListBookings(context.Background(), "shop1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 350.0, listed[0].Price)
	assert.Equal(t, b.ID, listed[0].ID)
}

func TestRapidSuccessiveBookingsGetDistinctIDs(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, models.BookingDraft{
		ShopID: "shop1", CustomerName: "A", ServiceID: "s1", Source: models.SourceApp,
	})
	require.NoError(t, err)
	second, err := svc.CreateBooking(ctx, models.BookingDraft{
		ShopID: "shop1", CustomerName: "B", ServiceID: "s2", Source: models.SourceApp,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	listed, err := svc.ListBookings(ctx, "shop1")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestUpdateStatusUnknownIDSilentlySucceeds(t *testing.T) {
	seed := []models.Booking{
		{ID: "b1", ShopID: "shop1", Status: models.StatusConfirmed, Source: models.SourceApp, Price: 350},
	}
	svc := newTestService([]models.Shop{cochinShop()}, seed)
	ctx := context.Background()

	require.NoError(t, svc.UpdateBookingStatus(ctx, "missing", models.StatusCompleted))

	listed, err := svc.ListBookings(ctx, "shop1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.StatusConfirmed, listed[0].Status)
}

func TestComputeRevenueExcludesCancelled(t *testing.T) {
	seed := []models.Booking{
		{ID: "b1", ShopID: "shop1", Status: models.StatusConfirmed, Source: models.SourceApp, Price: 500},
		{ID: "b2", ShopID: "shop1", Status: models.StatusCancelled, Source: models.SourceApp, Price: 300},
		{ID: "b3", ShopID: "shop1", Status: models.StatusCancelled, Source: models.SourceWalkIn, Price: 200},
	}
	svc := newTestService([]models.Shop{cochinShop()}, seed)

	stats, err := svc.ComputeRevenue(context.Background(), "shop1")
	require.NoError(t, err)

	assert.Equal(t, 500.0, stats.TodayApp)
	assert.Equal(t, 0.0, stats.TodayWalkIn)
}

func TestComputeRevenueProjectionFactors(t *testing.T) {
	seed := []models.Booking{
		{ID: "b1", ShopID: "shop1", Status: models.StatusCompleted, Source: models.SourceApp, Price: 350},
		{ID: "b2", ShopID: "shop1", Status: models.StatusCompleted, Source: models.SourceWalkIn, Price: 350},
	}
	svc := newTestService([]models.Shop{cochinShop()}, seed)

	stats, err := svc.ComputeRevenue(context.Background(), "shop1")
	require.NoError(t, err)

	assert.Equal(t, 350.0, stats.TodayApp)
	assert.Equal(t, 350.0, stats.TodayWalkIn)
	assert.Equal(t, 350.0*5.2, stats.WeekApp)
	assert.Equal(t, 350.0*4.8, stats.WeekWalkIn)
}

func TestComputeRevenueZeroTotalsProjectToZero(t *testing.T) {
	svc := newTestService([]models.Shop{cochinShop()}, nil)

	stats, err := svc.ComputeRevenue(context.Background(), "shop1")
	require.NoError(t, err)

	assert.Zero(t, stats.TodayApp)
	assert.Zero(t, stats.TodayWalkIn)
	assert.Zero(t, stats.WeekApp)
	assert.Zero(t, stats.WeekWalkIn)
}

func TestComputeRevenueFactorsAreConfigurable(t *testing.T) {
	seed := []models.Booking{
		{ID: "b1", ShopID: "shop1", Status: models.StatusCompleted, Source: models.SourceApp, Price: 100},
	}
	svc := newTestService([]models.Shop{cochinShop()}, seed)
	svc.Projection = ProjectionFactors{WeekApp: 2, WeekWalkIn: 3}

	stats, err := svc.ComputeRevenue(context.Background(), "shop1")
	require.NoError(t, err)

	assert.Equal(t, 200.0, stats.WeekApp)
	assert.Equal(t, 0.0, stats.WeekWalkIn)
}

func TestFixtureShopSnapshot(t *testing.T) {
	now := time.Now()
	seed := []models.Booking{
		{ID: "b1", ShopID: "shop1", CustomerName: "Rahul K.", ServiceID: "s1", StartTime: now,
			Status: models.StatusCompleted, Source: models.SourceApp, Price: 350, Commission: 52.5},
		{ID: "b2", ShopID: "shop1", CustomerName: "Walk-in Guest", ServiceID: "s1", StartTime: now,
			Status: models.StatusCompleted, Source: models.SourceWalkIn, Price: 350, Commission: 0},
	}
	svc := newTestService([]models.Shop{cochinShop()}, seed)
	ctx := context.Background()

	listed, err := svc.ListBookings(ctx, "shop1")
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	stats, err := svc.ComputeRevenue(ctx, "shop1")
	require.NoError(t, err)
	assert.Equal(t, 350.0, stats.TodayApp)
	assert.Equal(t, 350.0, stats.TodayWalkIn)
}
