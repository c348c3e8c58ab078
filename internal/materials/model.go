package materials

import "time"

// AdjustMode enumerates supported quantity adjustments.
type AdjustMode string

const (
	// AdjustSet replaces the stored quantity.
	AdjustSet AdjustMode = "set"
	// AdjustAdd increments the stored quantity.
	AdjustAdd AdjustMode = "add"
	// AdjustSubtract decrements the stored quantity, floored at zero.
	AdjustSubtract AdjustMode = "subtract"
)

// RawMaterial is a stocked input consumed according to recipes. Quantity is
// a single current-stock scalar; adjustments are last-write-wins with no
// audit trail.
type RawMaterial struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}
