package skus

// CreateSKURequest carries the payload for creating a SKU.
type CreateSKURequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Code        string `json:"code" validate:"required,max=50"`
	Description string `json:"description" validate:"max=1000"`
}
