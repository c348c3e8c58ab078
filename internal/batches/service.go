package batches

import (
	"context"
	"fmt"
	"time"

	"github.com/planboard/planboard/internal/platform/httpx"
)

const dayFormat = "2006-01-02"

// Service coordinates daily-batch operations.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record upserts one DailyBatch per valid entry inside a single transaction.
// Entries with an unknown-looking SKU id or non-positive count are skipped
// silently. Returns the number of rows written.
func (s *Service) Record(ctx context.Context, req RecordBatchesRequest) (int, error) {
	day, err := s.resolveDay(req.Date)
	if err != nil {
		return 0, err
	}

	// Last entry wins when the same SKU appears twice in one call.
	counts := map[int64]int{}
	order := []int64{}
	for _, entry := range req.Entries {
		if entry.SKUID <= 0 || entry.Batches <= 0 {
			continue
		}
		if _, seen := counts[entry.SKUID]; !seen {
			order = append(order, entry.SKUID)
		}
		counts[entry.SKUID] = entry.Batches
	}
	if len(counts) == 0 {
		return 0, nil
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		for _, skuID := range order {
			if err := tx.Upsert(ctx, DailyBatch{SKUID: skuID, Date: day, Batches: counts[skuID]}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("record batches: %w", err)
	}
	return len(counts), nil
}

// UpsertOne saves a single batch count for a SKU and day.
func (s *Service) UpsertOne(ctx context.Context, req UpsertBatchRequest) error {
	day, err := time.ParseInLocation(dayFormat, req.Date, time.UTC)
	if err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", httpx.ErrValidation)
	}
	return s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		return tx.Upsert(ctx, DailyBatch{SKUID: req.SKUID, Date: day, Batches: *req.Batches})
	})
}

// Day lists every SKU with its batch count and recipe for a calendar day.
func (s *Service) Day(ctx context.Context, date string) ([]SKUDaySummary, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}
	return s.repo.ListDay(ctx, day)
}

func (s *Service) resolveDay(date string) (time.Time, error) {
	if date == "" {
		now := s.now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.ParseInLocation(dayFormat, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", httpx.ErrValidation)
	}
	return day, nil
}
