package shop

import (
	"context"

	"washhub/models"
)

// Repository defines access to the shop catalog.
type Repository interface {
	// GetAll returns the full catalog, pending shops included.
	GetAll(ctx context.Context) ([]models.Shop, error)
	// GetByID returns the shop with the given id, or repository.ErrNotFound.
	GetByID(id string) (*models.Shop, error)
	// Approve clears a shop's pending flag and marks it verified.
	// Unknown ids return repository.ErrNotFound.
	Approve(id string) error
}
