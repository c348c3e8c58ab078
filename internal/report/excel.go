package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet the report is written to.
const SheetName = "Material Requirements"

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	minColWidth     = 10
	maxColWidth     = 50
	headerRowHeight = 24
)

// Filename returns the download name for a report dated day.
func Filename(day time.Time) string {
	return fmt.Sprintf("material_requirements_%s.xlsx", day.Format("2006-01-02"))
}

// EncodeXLSX serialises the table into an xlsx workbook. Columns are sized
// to their widest cell, clamped to [10, 50] characters; the header row gets
// a fixed height.
func EncodeXLSX(table *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	all := make([][]string, 0, len(table.Rows)+1)
	all = append(all, table.Headers)
	all = append(all, table.Rows...)

	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for col := range table.Headers {
		widest := 0
		for _, row := range all {
			if col < len(row) && len(row[col]) > widest {
				widest = len(row[col])
			}
		}
		width := widest + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col+1, err)
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return nil, fmt.Errorf("size column %s: %w", name, err)
		}
	}

	if err := f.SetRowHeight(SheetName, 1, headerRowHeight); err != nil {
		return nil, fmt.Errorf("set header height: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
