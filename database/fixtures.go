// Package database seeds the in-memory repositories with the demo dataset.
// There is no external store: the marketplace state lives in process memory
// for the lifetime of one server run.
package database

import (
	"time"

	"washhub/models"
)

func demoCatalog() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Express Wash", DurationMinutes: 30, Price: 350},
		{ID: "s2", Name: "Premium Interior", DurationMinutes: 60, Price: 850},
		{ID: "s3", Name: "Full Detailing", DurationMinutes: 120, Price: 2500},
	}
}

// DemoShops returns the seeded marketplace catalog. Kottayam Express Wash
// starts unverified and pending admin approval.
func DemoShops() []models.Shop {
	return []models.Shop{
		{
			ID:             "shop1",
			Name:           "Cochin Car Care",
			Location:       "Edappally, Kochi",
			Rating:         4.8,
			ReviewCount:    124,
			ImageURL:       "https://picsum.photos/400/300?random=1",
			IsVerified:     true,
			CommissionRate: 15,
			Services:       demoCatalog(),
		},
		{
			ID:             "shop2",
			Name:           "Trivandrum Wash Hub",
			Location:       "Kazhakkoottam, Trivandrum",
			Rating:         4.5,
			ReviewCount:    89,
			ImageURL:       "https://picsum.photos/400/300?random=2",
			IsVerified:     true,
			CommissionRate: 12,
			Services:       demoCatalog(),
		},
		{
			ID:             "shop3",
			Name:           "Malabar Auto Spa",
			Location:       "Mavoor Road, Kozhikode",
			Rating:         4.2,
			ReviewCount:    45,
			ImageURL:       "https://picsum.photos/400/300?random=3",
			IsVerified:     true,
			CommissionRate: 10,
			Services:       demoCatalog(),
		},
		{
			ID:              "shop4",
			Name:            "Kottayam Express Wash",
			Location:        "Kanjikuzhy, Kottayam",
			ImageURL:        "https://picsum.photos/400/300?random=4",
			IsVerified:      false,
			PendingApproval: true,
			CommissionRate:  15,
			Services:        demoCatalog(),
		},
	}
}

// DemoBookings returns the seed bookings for Cochin Car Care: one completed
// app order, one completed walk-in, and one upcoming confirmed app order.
func DemoBookings() []models.Booking {
	now := time.Now()
	return []models.Booking{
		{
			ID:           "b1",
			ShopID:       "shop1",
			CustomerName: "Rahul K.",
			ServiceID:    "s1",
			StartTime:    now,
			Status:       models.StatusCompleted,
			Source:       models.SourceApp,
			Price:        350,
			Commission:   52.5,
		},
		{
			ID:           "b2",
			ShopID:       "shop1",
			CustomerName: "Walk-in Guest",
			ServiceID:    "s1",
			StartTime:    now,
			Status:       models.StatusCompleted,
			Source:       models.SourceWalkIn,
			Price:        350,
			Commission:   0,
		},
		{
			ID:           "b3",
			ShopID:       "shop1",
			CustomerName: "Anjali M.",
			ServiceID:    "s2",
			StartTime:    now.Add(time.Hour),
			Status:       models.StatusConfirmed,
			Source:       models.SourceApp,
			Price:        850,
			Commission:   127.5,
		},
	}
}
