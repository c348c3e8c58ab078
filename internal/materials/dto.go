package materials

// CreateMaterialRequest carries the payload for creating a raw material.
type CreateMaterialRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Unit        string  `json:"unit" validate:"required,max=50"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Description string  `json:"description" validate:"max=1000"`
}

// AdjustQuantityRequest carries a stock adjustment. Quantity is a pointer so
// a missing field is distinguishable from an explicit zero.
type AdjustQuantityRequest struct {
	MaterialID int64    `json:"material_id" validate:"required,gt=0"`
	Quantity   *float64 `json:"quantity" validate:"required"`
	Action     string   `json:"action" validate:"required,oneof=set add subtract"`
}
