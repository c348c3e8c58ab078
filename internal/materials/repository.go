package materials

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planboard/planboard/internal/platform/httpx"
)

const uniqueViolation = "23505"

// Repository abstracts raw-material persistence for the service.
type Repository interface {
	Create(ctx context.Context, material RawMaterial) (int64, error)
	List(ctx context.Context) ([]RawMaterial, error)
	AdjustQuantity(ctx context.Context, id int64, amount float64, mode AdjustMode) (*RawMaterial, error)
}

// PGRepository persists raw materials in PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs PGRepository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) Create(ctx context.Context, material RawMaterial) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO raw_materials (name, unit, description, quantity, created_at)
VALUES ($1,$2,$3,$4,NOW()) RETURNING id`, material.Name, material.Unit, material.Description, material.Quantity).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, fmt.Errorf("%w: raw material %q already exists", httpx.ErrDuplicate, material.Name)
		}
		return 0, err
	}
	return id, nil
}

// List returns all raw materials ordered by name.
func (r *PGRepository) List(ctx context.Context) ([]RawMaterial, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, unit, description, quantity, created_at
FROM raw_materials ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RawMaterial{}
	for rows.Next() {
		var m RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Description, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// AdjustQuantity applies the adjustment as a single UPDATE expression so
// concurrent adjustments cannot lose updates. Subtract floors at zero.
func (r *PGRepository) AdjustQuantity(ctx context.Context, id int64, amount float64, mode AdjustMode) (*RawMaterial, error) {
	var m RawMaterial
	err := r.pool.QueryRow(ctx, `UPDATE raw_materials SET quantity = CASE
WHEN $3 = 'set' THEN $2
WHEN $3 = 'add' THEN quantity + $2
ELSE GREATEST(0, quantity - $2) END
WHERE id = $1
RETURNING id, name, unit, description, quantity, created_at`, id, amount, string(mode)).
		Scan(&m.ID, &m.Name, &m.Unit, &m.Description, &m.Quantity, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: raw material %d", httpx.ErrNotFound, id)
		}
		return nil, err
	}
	return &m, nil
}
