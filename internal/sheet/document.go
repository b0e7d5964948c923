// Package sheet holds the tabular document model: parsing fetched workbook
// bytes, resolving logical columns against a drifting header row, and scanning
// data rows for an identifier match.
package sheet

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// Document is one parsed workbook sheet: ordered rows of cell text plus the
// 1-based index of the header row. Replaced wholesale on refetch, never
// mutated.
type Document struct {
	SheetName string
	HeaderRow int
	rows      [][]string
}

// Parse reads workbook bytes and selects a sheet by name, or the first sheet
// when sheetName is empty. headerRow is 1-based.
func Parse(data []byte, sheetName string, headerRow int) (*Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewUpstreamFetchError("source document could not be parsed as a workbook", nil, err)
	}
	defer f.Close() //nolint:errcheck

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	} else {
		idx, err := f.GetSheetIndex(sheetName)
		if err != nil || idx < 0 {
			return nil, apperrors.NewSchemaMismatch("sheet not found", map[string]any{
				"sheet":  sheetName,
				"sheets": f.GetSheetList(),
			})
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if headerRow < 1 || headerRow > len(rows) {
		return nil, apperrors.NewSchemaMismatch("header row beyond sheet", map[string]any{
			"header_row": headerRow,
			"rows":       len(rows),
		})
	}

	return &Document{SheetName: sheetName, HeaderRow: headerRow, rows: rows}, nil
}

// Headers returns the header row cells.
func (d *Document) Headers() []string {
	return d.rows[d.HeaderRow-1]
}

// DataRows returns every row after the header row.
func (d *Document) DataRows() [][]string {
	return d.rows[d.HeaderRow:]
}

// cell reads a trimmed cell by zero-based column, tolerating short rows.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
