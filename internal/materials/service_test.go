package materials

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/platform/httpx"
)

type memoryRepo struct {
	materials map[int64]RawMaterial
	nextID    int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{materials: make(map[int64]RawMaterial)}
}

func (r *memoryRepo) Create(ctx context.Context, material RawMaterial) (int64, error) {
	r.nextID++
	material.ID = r.nextID
	r.materials[material.ID] = material
	return material.ID, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]RawMaterial, error) {
	out := make([]RawMaterial, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, m)
	}
	return out, nil
}

func (r *memoryRepo) AdjustQuantity(ctx context.Context, id int64, amount float64, mode AdjustMode) (*RawMaterial, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, fmt.Errorf("%w: raw material %d", httpx.ErrNotFound, id)
	}
	switch mode {
	case AdjustSet:
		m.Quantity = amount
	case AdjustAdd:
		m.Quantity += amount
	case AdjustSubtract:
		m.Quantity -= amount
		if m.Quantity < 0 {
			m.Quantity = 0
		}
	}
	r.materials[id] = m
	return &m, nil
}

func TestAdjustQuantityModes(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateMaterialRequest{Name: "Flour", Unit: "kg", Quantity: 50})
	require.NoError(t, err)

	m, err := svc.AdjustQuantity(ctx, created.ID, 20, AdjustAdd)
	require.NoError(t, err)
	require.InDelta(t, 70, m.Quantity, 1e-9)

	m, err = svc.AdjustQuantity(ctx, created.ID, 15.5, AdjustSubtract)
	require.NoError(t, err)
	require.InDelta(t, 54.5, m.Quantity, 1e-9)

	m, err = svc.AdjustQuantity(ctx, created.ID, 100, AdjustSet)
	require.NoError(t, err)
	require.InDelta(t, 100, m.Quantity, 1e-9)
}

func TestSubtractFloorsAtZero(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateMaterialRequest{Name: "Sugar", Unit: "kg", Quantity: 10})
	require.NoError(t, err)

	m, err := svc.AdjustQuantity(ctx, created.ID, 10000, AdjustSubtract)
	require.NoError(t, err)
	require.Zero(t, m.Quantity)
}

func TestAdjustQuantityUnknownMaterial(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.AdjustQuantity(context.Background(), 42, 1, AdjustAdd)
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestAdjustQuantityInvalidMode(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.AdjustQuantity(context.Background(), 1, 1, AdjustMode("divide"))
	require.ErrorIs(t, err, httpx.ErrValidation)
}
