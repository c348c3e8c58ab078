package recipes

// UpsertRecipeItemRequest carries a recipe write. Quantity is a pointer so a
// missing or non-numeric value fails validation instead of defaulting to 0.
type UpsertRecipeItemRequest struct {
	SKUID         int64    `json:"sku_id" validate:"required,gt=0"`
	RawMaterialID int64    `json:"raw_material_id" validate:"required,gt=0"`
	Quantity      *float64 `json:"quantity" validate:"required,gte=0"`
}
