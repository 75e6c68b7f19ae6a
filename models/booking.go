package models

import "time"

// BookingStatus tracks a booking through its lifecycle. Transitions move
// forward only (PENDING/CONFIRMED -> IN_PROGRESS -> COMPLETED); CANCELLED
// is reachable from any non-terminal state.
type BookingStatus string

const (
	StatusPending    BookingStatus = "PENDING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusInProgress BookingStatus = "IN_PROGRESS"
	StatusCompleted  BookingStatus = "COMPLETED"
	StatusCancelled  BookingStatus = "CANCELLED"
)

// BookingSource is the channel a booking originated from.
type BookingSource string

const (
	SourceApp    BookingSource = "APP"
	SourceWalkIn BookingSource = "WALK_IN"
)

// Booking is one reservation or walk-in transaction against a shop's
// service. Price is copied from the catalog at creation and never changes
// afterwards, even if the catalog entry is repriced. Bookings are never
// deleted; they only move through statuses.
type Booking struct {
	ID           string        `json:"id"`
	ShopID       string        `json:"shopId"`
	CustomerName string        `json:"customerName"`
	ServiceID    string        `json:"serviceId"`
	StartTime    time.Time     `json:"startTime"`
	Status       BookingStatus `json:"status"`
	Source       BookingSource `json:"source"`
	Price        float64       `json:"price"`
	Commission   float64       `json:"commission"`
}

// BookingDraft carries everything a caller supplies to create a booking.
// The id, price and commission are assigned by the booking service; a
// zero Status lets the service pick the default for the source.
type BookingDraft struct {
	ShopID       string        `json:"shopId"`
	CustomerName string        `json:"customerName"`
	ServiceID    string        `json:"serviceId"`
	StartTime    time.Time     `json:"startTime"`
	Source       BookingSource `json:"source"`
	Status       BookingStatus `json:"status,omitempty"`
}
