package sheet

import (
	"github.com/xuri/excelize/v2"

	"github.com/spec-kit/driver-registry/internal/normalize"
	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// Canonical header spellings of the four logical fields in the roster
// document, with the spreadsheet columns they have historically lived in.
const (
	HeaderName       = "NOMBRES Y APELLIDOS"
	HeaderIdentifier = "DNI / CE"
	HeaderExpiry     = "FECHA DE VIGENCIA DE HABILITACIÓN DE LICENCIA INTERNA"
	HeaderStatus     = "ESTATUS DE PROCESO DE HABILITACION"
)

var fallbackColumns = map[string]string{
	HeaderName:       "D",
	HeaderIdentifier: "E",
	HeaderExpiry:     "AF",
	HeaderStatus:     "AG",
}

// ColumnMap locates the four logical fields by zero-based column position,
// resolved once per document.
type ColumnMap struct {
	Name       int
	Identifier int
	Expiry     int
	Status     int
}

// ResolveColumns maps logical fields to columns. Header text is matched
// exactly after normalization (trim, case, whitespace, diacritics); a field
// whose header is absent falls back to its historical column letter. Only
// when a needed fallback lies beyond the document width does resolution fail,
// naming the missing fields and echoing every observed header.
func ResolveColumns(headers []string) (ColumnMap, error) {
	observed := make([]string, len(headers))
	for i, h := range headers {
		observed[i] = normalize.Header(h)
	}

	var missing []string
	locate := func(label string) int {
		target := normalize.Header(label)
		for i, h := range observed {
			if h == target {
				return i
			}
		}
		col, err := excelize.ColumnNameToNumber(fallbackColumns[label])
		if err != nil || col-1 >= len(headers) {
			missing = append(missing, label)
			return -1
		}
		return col - 1
	}

	cols := ColumnMap{
		Name:       locate(HeaderName),
		Identifier: locate(HeaderIdentifier),
		Expiry:     locate(HeaderExpiry),
		Status:     locate(HeaderStatus),
	}
	if len(missing) > 0 {
		return ColumnMap{}, apperrors.NewSchemaMismatch("required columns missing", map[string]any{
			"missing": missing,
			"headers": observed,
		})
	}
	return cols, nil
}
