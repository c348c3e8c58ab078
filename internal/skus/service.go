package skus

import (
	"context"
	"fmt"
)

// Service coordinates SKU operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new SKU.
func (s *Service) Create(ctx context.Context, req CreateSKURequest) (*SKU, error) {
	sku := SKU{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	id, err := s.repo.Create(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("create sku: %w", err)
	}
	sku.ID = id
	return &sku, nil
}

// List returns all SKUs with their recipes.
func (s *Service) List(ctx context.Context) ([]SKUWithRecipe, error) {
	return s.repo.ListWithRecipe(ctx)
}
