package skus

import "time"

// SKU is a distinct finished product definition. SKUs are created by admin
// action and have no delete path; batches and recipes reference them by id.
type SKU struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecipeLine is a recipe item joined to its raw material, as included in
// SKU listings.
type RecipeLine struct {
	RawMaterialID   int64   `json:"raw_material_id"`
	RawMaterialName string  `json:"raw_material_name"`
	Unit            string  `json:"unit"`
	Quantity        float64 `json:"quantity"`
}

// SKUWithRecipe is a SKU together with its bill of materials.
type SKUWithRecipe struct {
	SKU
	RecipeItems []RecipeLine `json:"recipe_items"`
}
