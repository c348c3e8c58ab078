package batches

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planboard/planboard/internal/platform/httpx"
)

type memoryRepo struct {
	rows map[string]int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[string]int)}
}

func rowKey(skuID int64, day time.Time) string {
	return fmt.Sprintf("%d:%s", skuID, day.Format(dayFormat))
}

type memoryTx struct {
	repo    *memoryRepo
	pending map[string]int
}

func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	tx := &memoryTx{repo: r, pending: make(map[string]int)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for k, v := range tx.pending {
		r.rows[k] = v
	}
	return nil
}

func (r *memoryRepo) ListDay(ctx context.Context, day time.Time) ([]SKUDaySummary, error) {
	return nil, nil
}

func (tx *memoryTx) Upsert(ctx context.Context, batch DailyBatch) error {
	tx.pending[rowKey(batch.SKUID, batch.Date)] = batch.Batches
	return nil
}

func TestRecordSkipsInvalidEntries(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	saved, err := svc.Record(ctx, RecordBatchesRequest{
		Date: "2026-03-14",
		Entries: []BatchEntry{
			{SKUID: 1, Batches: 5},
			{SKUID: 0, Batches: 3},
			{SKUID: 2, Batches: -1},
			{SKUID: 2, Batches: 4},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, saved)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 5, repo.rows[rowKey(1, day)])
	require.Equal(t, 4, repo.rows[rowKey(2, day)])
}

func TestRecordAllInvalidWritesNothing(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	saved, err := svc.Record(context.Background(), RecordBatchesRequest{
		Date:    "2026-03-14",
		Entries: []BatchEntry{{SKUID: 0, Batches: 1}, {SKUID: 3, Batches: 0}},
	})
	require.NoError(t, err)
	require.Zero(t, saved)
	require.Empty(t, repo.rows)
}

func TestRecordUpsertsOnSameDay(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Record(ctx, RecordBatchesRequest{Date: "2026-03-14", Entries: []BatchEntry{{SKUID: 1, Batches: 5}}})
	require.NoError(t, err)
	_, err = svc.Record(ctx, RecordBatchesRequest{Date: "2026-03-14", Entries: []BatchEntry{{SKUID: 1, Batches: 8}}})
	require.NoError(t, err)

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 8, repo.rows[rowKey(1, day)])
	require.Len(t, repo.rows, 1)
}

func TestDayBadDateIsValidationError(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Day(context.Background(), "14-03-2026")
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Record(context.Background(), RecordBatchesRequest{
		Date:    "not-a-date",
		Entries: []BatchEntry{{SKUID: 1, Batches: 1}},
	})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestDayStoreFailureIsNotValidation(t *testing.T) {
	svc := NewService(brokenRepo{})

	_, err := svc.Day(context.Background(), "2026-03-14")
	require.Error(t, err)
	require.NotErrorIs(t, err, httpx.ErrValidation)
	require.ErrorIs(t, err, errStoreDown)
}

var errStoreDown = errors.New("store down")

type brokenRepo struct{}

func (brokenRepo) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return errStoreDown
}

func (brokenRepo) ListDay(ctx context.Context, day time.Time) ([]SKUDaySummary, error) {
	return nil, errStoreDown
}

func TestRecordDefaultsToToday(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2026, 7, 1, 13, 45, 0, 0, time.UTC) }

	_, err := svc.Record(context.Background(), RecordBatchesRequest{Entries: []BatchEntry{{SKUID: 7, Batches: 2}}})
	require.NoError(t, err)

	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 2, repo.rows[rowKey(7, day)])
}
