package skus

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planboard/planboard/internal/platform/httpx"
)

const uniqueViolation = "23505"

// Repository abstracts SKU persistence for the service.
type Repository interface {
	Create(ctx context.Context, sku SKU) (int64, error)
	ListWithRecipe(ctx context.Context) ([]SKUWithRecipe, error)
}

// PGRepository persists SKUs in PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs PGRepository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) Create(ctx context.Context, sku SKU) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO skus (code, name, description, created_at)
VALUES ($1,$2,$3,NOW()) RETURNING id`, sku.Code, sku.Name, sku.Description).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: sku code %q already exists", httpx.ErrDuplicate, sku.Code)
		}
		return 0, err
	}
	return id, nil
}

// ListWithRecipe returns every SKU with its recipe lines, SKUs ordered by
// name, lines ordered by material name.
func (r *PGRepository) ListWithRecipe(ctx context.Context) ([]SKUWithRecipe, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, code, name, description, created_at
FROM skus ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SKUWithRecipe{}
	index := map[int64]int{}
	for rows.Next() {
		var s SKUWithRecipe
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.RecipeItems = []RecipeLine{}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.pool.Query(ctx, `SELECT ri.sku_id, ri.raw_material_id, rm.name, rm.unit, ri.quantity
FROM recipe_items ri
JOIN raw_materials rm ON rm.id = ri.raw_material_id
ORDER BY rm.name ASC`)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var skuID int64
		var line RecipeLine
		if err := lineRows.Scan(&skuID, &line.RawMaterialID, &line.RawMaterialName, &line.Unit, &line.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[skuID]; ok {
			out[i].RecipeItems = append(out[i].RecipeItems, line)
		}
	}
	return out, lineRows.Err()
}
