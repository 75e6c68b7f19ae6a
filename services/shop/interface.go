package shop

import (
	"context"

	shopRepo "washhub/database/repository/shop"
	"washhub/models"
)

// Service exposes the shop catalog to the portals.
type Service interface {
	// ListShops returns the catalog; with verifiedOnly set, shops still
	// pending approval are filtered out (the customer portal view).
	ListShops(ctx context.Context, verifiedOnly bool) ([]models.Shop, error)
	// GetShop returns one shop, or repository.ErrNotFound.
	GetShop(id string) (*models.Shop, error)
	// ApproveShop verifies a pending shop, making it customer-visible on
	// the next catalog read.
	ApproveShop(id string) error
}

// DefaultShopService implements Service over the shop repository.
type DefaultShopService struct {
	Repo shopRepo.Repository
}
