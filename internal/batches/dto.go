package batches

// BatchEntry is one (SKU, count) pair in a bulk save. Entries with a zero or
// negative count are skipped, not stored.
type BatchEntry struct {
	SKUID   int64 `json:"sku_id"`
	Batches int   `json:"batches"`
}

// RecordBatchesRequest saves a day's batch counts in one call.
type RecordBatchesRequest struct {
	Date    string       `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Entries []BatchEntry `json:"entries" validate:"required,min=1"`
}

// UpsertBatchRequest saves a single batch count for a SKU and day.
type UpsertBatchRequest struct {
	SKUID   int64  `json:"sku_id" validate:"required,gt=0"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Batches *int   `json:"batches" validate:"required,gte=0"`
}
