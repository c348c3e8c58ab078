package recipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planboard/planboard/internal/platform/httpx"
)

const foreignKeyViolation = "23503"

// Repository abstracts recipe persistence for the service.
type Repository interface {
	Upsert(ctx context.Context, item RecipeItem) (*RecipeItem, error)
	Delete(ctx context.Context, skuID, rawMaterialID int64) error
	ListBySKU(ctx context.Context, skuID int64) ([]RecipeItemWithMaterial, error)
}

// PGRepository persists recipe items in PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs PGRepository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Upsert writes the quantity for a (sku, raw material) pair, overwriting an
// existing row instead of duplicating it.
func (r *PGRepository) Upsert(ctx context.Context, item RecipeItem) (*RecipeItem, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO recipe_items (sku_id, raw_material_id, quantity)
VALUES ($1,$2,$3)
ON CONFLICT (sku_id, raw_material_id) DO UPDATE SET quantity = EXCLUDED.quantity
RETURNING id`, item.SKUID, item.RawMaterialID, item.Quantity).Scan(&item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("%w: unknown sku or raw material", httpx.ErrValidation)
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) Delete(ctx context.Context, skuID, rawMaterialID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipe_items WHERE sku_id=$1 AND raw_material_id=$2`, skuID, rawMaterialID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: recipe item for sku %d and raw material %d", httpx.ErrNotFound, skuID, rawMaterialID)
	}
	return nil
}

// ListBySKU returns the recipe of one SKU, ordered by material name.
func (r *PGRepository) ListBySKU(ctx context.Context, skuID int64) ([]RecipeItemWithMaterial, error) {
	rows, err := r.pool.Query(ctx, `SELECT ri.id, ri.sku_id, ri.raw_material_id, ri.quantity, rm.name, rm.unit
FROM recipe_items ri
JOIN raw_materials rm ON rm.id = ri.raw_material_id
WHERE ri.sku_id = $1
ORDER BY rm.name ASC`, skuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RecipeItemWithMaterial{}
	for rows.Next() {
		var item RecipeItemWithMaterial
		if err := rows.Scan(&item.ID, &item.SKUID, &item.RawMaterialID, &item.Quantity, &item.RawMaterialName, &item.Unit); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
