package shop

import (
	"context"
	"sync"
	"time"

	"washhub/database/repository"
	"washhub/models"
)

// MemoryShopRepo keeps the catalog in an in-process slice. The demo has no
// persistence; one repo instance is the catalog for the lifetime of the run.
type MemoryShopRepo struct {
	mu      sync.RWMutex
	shops   []models.Shop
	latency time.Duration
}

// NewMemoryShopRepo seeds a repo with the given catalog. latency is applied
// to listing calls only, matching the demo's simulated network delay.
func NewMemoryShopRepo(seed []models.Shop, latency time.Duration) *MemoryShopRepo {
	shops := make([]models.Shop, len(seed))
	copy(shops, seed)
	return &MemoryShopRepo{shops: shops, latency: latency}
}

func (r *MemoryShopRepo) GetAll(ctx context.Context) ([]models.Shop, error) {
	repository.SimulateLatency(ctx, r.latency)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Shop, len(r.shops))
	copy(out, r.shops)
	return out, nil
}

func (r *MemoryShopRepo) GetByID(id string) (*models.Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.shops {
		if r.shops[i].ID == id {
			s := r.shops[i]
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *MemoryShopRepo) Approve(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.shops {
		if r.shops[i].ID == id {
			r.shops[i].PendingApproval = false
			r.shops[i].IsVerified = true
			return nil
		}
	}
	return repository.ErrNotFound
}
