package materials

import (
	"context"
	"fmt"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Service coordinates raw-material operations.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new raw material with its initial stock quantity.
func (s *Service) Create(ctx context.Context, req CreateMaterialRequest) (*RawMaterial, error) {
	material := RawMaterial{
		Name:        req.Name,
		Unit:        req.Unit,
		Description: req.Description,
		Quantity:    req.Quantity,
	}
	id, err := s.repo.Create(ctx, material)
	if err != nil {
		return nil, fmt.Errorf("create raw material: %w", err)
	}
	material.ID = id
	return &material, nil
}

// List returns all raw materials.
func (s *Service) List(ctx context.Context) ([]RawMaterial, error) {
	return s.repo.List(ctx)
}

// AdjustQuantity mutates stock in place. Set replaces, add increments and
// subtract floors at zero.
func (s *Service) AdjustQuantity(ctx context.Context, materialID int64, amount float64, mode AdjustMode) (*RawMaterial, error) {
	switch mode {
	case AdjustSet, AdjustAdd, AdjustSubtract:
	default:
		return nil, fmt.Errorf("%w: unknown action %q", httpx.ErrValidation, mode)
	}
	return s.repo.AdjustQuantity(ctx, materialID, amount, mode)
}
