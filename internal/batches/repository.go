package batches

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planboard/planboard/internal/platform/db"
)

// TxRepository exposes the transactional writes used by the service.
type TxRepository interface {
	Upsert(ctx context.Context, batch DailyBatch) error
}

// Repository abstracts daily-batch persistence for the service.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
	ListDay(ctx context.Context, day time.Time) ([]SKUDaySummary, error)
}

// PGRepository persists daily batches in PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs PGRepository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

type txRepository struct {
	tx pgx.Tx
}

// WithTx executes the callback inside one transaction so a multi-entry save
// is applied all-or-none.
func (r *PGRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

func (r *txRepository) Upsert(ctx context.Context, batch DailyBatch) error {
	_, err := r.tx.Exec(ctx, `INSERT INTO daily_batches (sku_id, batch_date, batches)
VALUES ($1,$2,$3)
ON CONFLICT (sku_id, batch_date) DO UPDATE SET batches = EXCLUDED.batches`, batch.SKUID, batch.Date, batch.Batches)
	return err
}

// ListDay returns every SKU ordered by name with its batch count for the day
// (zero when absent) and its recipe lines ordered by material name.
func (r *PGRepository) ListDay(ctx context.Context, day time.Time) ([]SKUDaySummary, error) {
	rows, err := r.pool.Query(ctx, `SELECT s.id, s.code, s.name, COALESCE(b.batches, 0)
FROM skus s
LEFT JOIN daily_batches b ON b.sku_id = s.id AND b.batch_date = $1
ORDER BY s.name ASC`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SKUDaySummary{}
	index := map[int64]int{}
	for rows.Next() {
		var s SKUDaySummary
		if err := rows.Scan(&s.SKUID, &s.Code, &s.Name, &s.Batches); err != nil {
			return nil, err
		}
		s.RecipeItems = []RecipeLine{}
		index[s.SKUID] = len(out)
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
