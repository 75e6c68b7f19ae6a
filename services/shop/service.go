package shop

import (
	"context"
	"fmt"

	"washhub/models"
)

func (s *DefaultShopService) ListShops(ctx context.Context, verifiedOnly bool) ([]models.Shop, error) {
	shops, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shops: %w", err)
	}
	if !verifiedOnly {
		return shops, nil
	}
	verified := make([]models.Shop, 0, len(shops))
	for _, sh := range shops {
		if sh.IsVerified {
			verified = append(verified, sh)
		}
	}
	return verified, nil
}

func (s *DefaultShopService) GetShop(id string) (*models.Shop, error) {
	return s.Repo.GetByID(id)
}

// ApproveShop mutates the shared catalog, so every subsequent reader sees
// the shop as verified.
func (s *DefaultShopService) ApproveShop(id string) error {
	return s.Repo.Approve(id)
}
