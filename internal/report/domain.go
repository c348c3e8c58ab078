package report

import (
	"encoding/json"
	"time"
)

// BatchCount pairs a SKU with today's planned batch count. Entries with a
// non-positive count or an unset SKU id are dropped, not rejected.
type BatchCount struct {
	SKUID   int64 `json:"sku_id"`
	Batches int   `json:"batches"`
}

// UnmarshalJSON decodes leniently: a malformed entry (non-numeric or missing
// fields, or not an object at all) decodes to the zero value, so it is
// dropped by the standard filtering instead of failing the whole request.
func (b *BatchCount) UnmarshalJSON(data []byte) error {
	*b = BatchCount{}
	var raw struct {
		SKUID   json.RawMessage `json:"sku_id"`
		Batches json.RawMessage `json:"batches"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	b.SKUID = int64(lenientNumber(raw.SKUID))
	b.Batches = int(lenientNumber(raw.Batches))
	return nil
}

func lenientNumber(raw json.RawMessage) float64 {
	var v float64
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return 0
	}
	return v
}

// SKUColumn is the SKU identity shown as one report column.
type SKUColumn struct {
	ID   int64
	Code string
	Name string
}

// Material is a raw material with its current stock level.
type Material struct {
	ID       int64
	Name     string
	Unit     string
	Quantity float64
}

// RecipeItem is the per-batch quantity of one material for one SKU.
type RecipeItem struct {
	SKUID         int64
	RawMaterialID int64
	Quantity      float64
}

// ConsumptionRow is one previous-day batch record joined to one of its
// SKU's recipe lines. Consumption for a material is the sum of
// quantity x batches over its rows.
type ConsumptionRow struct {
	SKUID         int64
	Batches       int
	RawMaterialID int64
	Quantity      float64
}

// Table is the computed material-requirements report, one row per raw
// material. Cells are pre-formatted; zero requirements render blank.
type Table struct {
	Date    time.Time
	Headers []string
	Rows    [][]string
}
