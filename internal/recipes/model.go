package recipes

// RecipeItem maps a raw-material quantity to one batch of a SKU. At most one
// item exists per (SKU, raw material) pair; writes upsert on that key.
type RecipeItem struct {
	ID            int64   `json:"id"`
	SKUID         int64   `json:"sku_id"`
	RawMaterialID int64   `json:"raw_material_id"`
	Quantity      float64 `json:"quantity"`
}

// RecipeItemWithMaterial is a recipe item joined to its raw material for
// listings.
type RecipeItemWithMaterial struct {
	RecipeItem
	RawMaterialName string `json:"raw_material_name"`
	Unit            string `json:"unit"`
}
