package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEncodeXLSXRoundTrip(t *testing.T) {
	table := &Table{
		Date:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Headers: []string{"Raw Material", "Unit", "Opening", "Bread (BRD-01)", "Total", "Closing"},
		Rows: [][]string{
			{"Flour", "kg", "90", "10", "10", "80"},
			{"Sugar", "kg", "20", "", "", "20"},
		},
	}

	payload, err := EncodeXLSX(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, table.Headers, rows[0])
	require.Equal(t, "Flour", rows[1][0])
	require.Equal(t, "80", rows[1][5])
	// Blank cells stay blank, not zero.
	require.Equal(t, "", rows[2][3])
}

func TestEncodeXLSXColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"Raw Material", "U", "Opening"},
		Rows:    [][]string{{"A material with an unusually long descriptive name that keeps going well past fifty characters", "g", "1"}},
	}

	payload, err := EncodeXLSX(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// First column clamps to the maximum, the narrow one to the minimum.
	w, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	require.InDelta(t, 50, w, 0.01)

	w, err = f.GetColWidth(SheetName, "B")
	require.NoError(t, err)
	require.InDelta(t, 10, w, 0.01)

	h, err := f.GetRowHeight(SheetName, 1)
	require.NoError(t, err)
	require.InDelta(t, 24, h, 0.01)
}

func TestFilename(t *testing.T) {
	require.Equal(t, "material_requirements_2026-03-14.xlsx",
		Filename(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)))
}
