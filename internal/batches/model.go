package batches

import "time"

// DailyBatch is a production fact: how many batches of a SKU were produced
// on a calendar day. At most one record exists per (SKU, day); writes upsert
// on that key and records are never deleted.
type DailyBatch struct {
	ID      int64     `json:"id"`
	SKUID   int64     `json:"sku_id"`
	Date    time.Time `json:"date"`
	Batches int       `json:"batches"`
}

// RecipeLine is a recipe item joined to its material, as included in the
// per-day listing.
type RecipeLine struct {
	RawMaterialID   int64   `json:"raw_material_id"`
	RawMaterialName string  `json:"raw_material_name"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
}

// SKUDaySummary is one SKU with its batch count for a given day and its
// recipe, as served to the batch-entry screen.
type SKUDaySummary struct {
	SKUID       int64        `json:"sku_id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Batches     int          `json:"batches"`
	RecipeItems []RecipeLine `json:"recipe_items"`
}
