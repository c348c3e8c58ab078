package skus

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/platform/httpx"
)

type memoryRepo struct {
	nextID int64
	rows   []SKU
}

func (r *memoryRepo) Create(ctx context.Context, sku SKU) (int64, error) {
	for _, existing := range r.rows {
		if existing.Code == sku.Code {
			return 0, fmt.Errorf("%w: sku code %q already exists", httpx.ErrDuplicate, sku.Code)
		}
	}
	r.nextID++
	sku.ID = r.nextID
	r.rows = append(r.rows, sku)
	return sku.ID, nil
}

func (r *memoryRepo) ListWithRecipe(ctx context.Context) ([]SKUWithRecipe, error) {
	out := make([]SKUWithRecipe, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, SKUWithRecipe{SKU: s, RecipeItems: []RecipeLine{}})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(&memoryRepo{})

	sku, err := svc.Create(context.Background(), CreateSKURequest{Code: "BRD-01", Name: "Bread"})
	require.NoError(t, err)
	require.Equal(t, int64(1), sku.ID)
	require.Equal(t, "BRD-01", sku.Code)
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := NewService(&memoryRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateSKURequest{Code: "BRD-01", Name: "Bread"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateSKURequest{Code: "BRD-01", Name: "Baguette"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}

func TestListOrderedByName(t *testing.T) {
	svc := NewService(&memoryRepo{})
	ctx := context.Background()

	for _, name := range []string{"Cake", "Bread", "Ale"} {
		_, err := svc.Create(ctx, CreateSKURequest{Code: name, Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Ale", list[0].Name)
	require.Equal(t, "Bread", list[1].Name)
	require.Equal(t, "Cake", list[2].Name)
	require.NotNil(t, list[0].RecipeItems)
}
