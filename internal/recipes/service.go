package recipes

import (
	"context"
	"fmt"
)

// Service coordinates recipe operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert writes a recipe item, overwriting an existing quantity for the same
// (sku, raw material) pair.
func (s *Service) Upsert(ctx context.Context, req UpsertRecipeItemRequest) (*RecipeItem, error) {
	item := RecipeItem{
		SKUID:         req.SKUID,
		RawMaterialID: req.RawMaterialID,
		Quantity:      *req.Quantity,
	}
	saved, err := s.repo.Upsert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("upsert recipe item: %w", err)
	}
	return saved, nil
}

// Delete removes one recipe item.
func (s *Service) Delete(ctx context.Context, skuID, rawMaterialID int64) error {
	return s.repo.Delete(ctx, skuID, rawMaterialID)
}

// ListBySKU returns the recipe for one SKU.
func (s *Service) ListBySKU(ctx context.Context, skuID int64) ([]RecipeItemWithMaterial, error) {
	return s.repo.ListBySKU(ctx, skuID)
}
