package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryPort abstracts the reads the aggregator needs. Orderings are
// part of the contract: the report's row and column order must not depend on
// incidental store iteration order.
type RepositoryPort interface {
	// SKUsByIDs returns the matching SKUs ordered by name.
	SKUsByIDs(ctx context.Context, ids []int64) ([]SKUColumn, error)
	// Materials returns every raw material ordered by name.
	Materials(ctx context.Context) ([]Material, error)
	// RecipeItems returns all recipe lines for the given SKUs.
	RecipeItems(ctx context.Context, skuIDs []int64) ([]RecipeItem, error)
	// Consumption returns batch-recipe join rows for batches recorded in
	// [from, to).
	Consumption(ctx context.Context, from, to time.Time) ([]ConsumptionRow, error)
}

// PGRepository reads report inputs from PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs PGRepository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) SKUsByIDs(ctx context.Context, ids []int64) ([]SKUColumn, error) {
	if len(ids) == 0 {
		return []SKUColumn{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT id, code, name FROM skus WHERE id = ANY($1) ORDER BY name ASC`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SKUColumn{}
	for rows.Next() {
		var s SKUColumn
		if err := rows.Scan(&s.ID, &s.Code, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepository) Materials(ctx context.Context) ([]Material, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, unit, quantity FROM raw_materials ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Material{}
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Quantity); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepository) RecipeItems(ctx context.Context, skuIDs []int64) ([]RecipeItem, error) {
	if len(skuIDs) == 0 {
		return []RecipeItem{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT sku_id, raw_material_id, quantity FROM recipe_items WHERE sku_id = ANY($1)`, skuIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RecipeItem{}
	for rows.Next() {
		var item RecipeItem
		if err := rows.Scan(&item.SKUID, &item.RawMaterialID, &item.Quantity); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PGRepository) Consumption(ctx context.Context, from, to time.Time) ([]ConsumptionRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT b.sku_id, b.batches, ri.raw_material_id, ri.quantity
FROM daily_batches b
JOIN recipe_items ri ON ri.sku_id = b.sku_id
WHERE b.batch_date >= $1 AND b.batch_date < $2`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ConsumptionRow{}
	for rows.Next() {
		var row ConsumptionRow
		if err := rows.Scan(&row.SKUID, &row.Batches, &row.RawMaterialID, &row.Quantity); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
