package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/planboard/planboard/internal/platform/httpx"
)

// Service computes the material-requirements report.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Generate joins batch counts, recipes and stock levels into one table:
// per material, the requirement for each SKU (recipe quantity x batches),
// the total, the opening quantity (stock net of previous-day consumption)
// and the closing quantity (opening net of today's total). Opening and
// closing floor at zero. Generation is read-only; stock is never mutated.
func (s *Service) Generate(ctx context.Context, reportDate time.Time, counts []BatchCount) (*Table, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: batch counts required", httpx.ErrValidation)
	}

	batchesBySKU := map[int64]int{}
	ids := []int64{}
	for _, c := range counts {
		if c.SKUID <= 0 || c.Batches <= 0 {
			continue
		}
		if _, seen := batchesBySKU[c.SKUID]; !seen {
			ids = append(ids, c.SKUID)
		}
		batchesBySKU[c.SKUID] = c.Batches
	}

	skuCols, err := s.repo.SKUsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch skus: %w", err)
	}
	materials, err := s.repo.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch raw materials: %w", err)
	}
	recipeItems, err := s.repo.RecipeItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch recipe items: %w", err)
	}

	dayStart := time.Date(reportDate.UTC().Year(), reportDate.UTC().Month(), reportDate.UTC().Day(), 0, 0, 0, 0, time.UTC)
	consumption, err := s.repo.Consumption(ctx, dayStart.AddDate(0, 0, -1), dayStart)
	if err != nil {
		return nil, fmt.Errorf("fetch previous-day consumption: %w", err)
	}

	prior := map[int64]float64{}
	for _, row := range consumption {
		prior[row.RawMaterialID] += row.Quantity * float64(row.Batches)
	}

	// required[materialID][skuID] = recipe quantity x today's batch count
	required := map[int64]map[int64]float64{}
	for _, item := range recipeItems {
		batches := batchesBySKU[item.SKUID]
		if batches <= 0 {
			continue
		}
		perSKU := required[item.RawMaterialID]
		if perSKU == nil {
			perSKU = map[int64]float64{}
			required[item.RawMaterialID] = perSKU
		}
		perSKU[item.SKUID] = item.Quantity * float64(batches)
	}

	headers := []string{"Raw Material", "Unit", "Opening"}
	for _, sku := range skuCols {
		headers = append(headers, fmt.Sprintf("%s (%s)", sku.Name, sku.Code))
	}
	headers = append(headers, "Total", "Closing")

	table := &Table{Date: dayStart, Headers: headers, Rows: make([][]string, 0, len(materials))}
	for _, material := range materials {
		opening := material.Quantity - prior[material.ID]
		if opening < 0 {
			opening = 0
		}

		row := []string{material.Name, material.Unit, formatQuantity(opening)}
		total := 0.0
		for _, sku := range skuCols {
			requirement := required[material.ID][sku.ID]
			row = append(row, blankIfZero(requirement))
			total += requirement
		}
		row = append(row, blankIfZero(total))

		closing := opening - total
		if closing < 0 {
			closing = 0
		}
		row = append(row, formatQuantity(closing))

		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func blankIfZero(v float64) string {
	if v == 0 {
		return ""
	}
	return formatQuantity(v)
}
