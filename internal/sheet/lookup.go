package sheet

import (
	"github.com/spec-kit/driver-registry/internal/domain"
	"github.com/spec-kit/driver-registry/internal/normalize"
)

// Find scans data rows for the first row whose identifier column normalizes
// to the query identifier and projects its four logical fields. Later
// duplicate rows are ignored. A miss is a normal negative result, not an
// error.
func Find(doc *Document, cols ColumnMap, identifier string) (*domain.DriverRecord, bool) {
	want := normalize.Identifier(identifier)
	if want == "" {
		return nil, false
	}

	for _, row := range doc.DataRows() {
		if normalize.Identifier(cell(row, cols.Identifier)) != want {
			continue
		}
		return &domain.DriverRecord{
			Name:       cell(row, cols.Name),
			Identifier: want,
			ExpiryDate: cell(row, cols.Expiry),
			Status:     cell(row, cols.Status),
		}, true
	}
	return nil, false
}
