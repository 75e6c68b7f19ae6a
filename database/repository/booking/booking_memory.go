package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"washhub/database/repository"
	"washhub/models"
)

// MemoryBookingRepo holds the booking collection in an in-process slice.
// Mutations replace whole records under the lock, so no partial write is
// ever observable. Bookings are never removed.
type MemoryBookingRepo struct {
	mu         sync.RWMutex
	bookings   []models.Booking
	readDelay  time.Duration
	writeDelay time.Duration
}

// NewMemoryBookingRepo seeds a repo with the given bookings. The delays
// mimic the demo's simulated round-trips (read on listing, write on insert).
func NewMemoryBookingRepo(seed []models.Booking, readDelay, writeDelay time.Duration) *MemoryBookingRepo {
	bookings := make([]models.Booking, len(seed))
	copy(bookings, seed)
	return &MemoryBookingRepo{bookings: bookings, readDelay: readDelay, writeDelay: writeDelay}
}

func (r *MemoryBookingRepo) GetByShop(ctx context.Context, shopID string) ([]models.Booking, error) {
	repository.SimulateLatency(ctx, r.readDelay)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ShopID == shopID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) Insert(ctx context.Context, b models.Booking) (*models.Booking, error) {
	repository.SimulateLatency(ctx, r.writeDelay)
	b.ID = uuid.New().String()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append([]models.Booking{b}, r.bookings...)
	return &b, nil
}

func (r *MemoryBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	// Absent id: silently succeed.
	return nil
}
