package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// buildWorkbook writes rows into Sheet1 starting at the given 1-based row.
func buildWorkbook(t *testing.T, startRow int, rows ...[]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, startRow+i)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", ref, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseSelectsFirstSheetByDefault(t *testing.T) {
	data := buildWorkbook(t, 1,
		[]interface{}{"DNI / CE", "NOMBRES Y APELLIDOS"},
		[]interface{}{"12345678", "Jane Doe"},
	)

	doc, err := Parse(data, "", 1)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", doc.SheetName)
	assert.Equal(t, []string{"DNI / CE", "NOMBRES Y APELLIDOS"}, doc.Headers())
	assert.Len(t, doc.DataRows(), 1)
}

func TestParseHeaderRowOffset(t *testing.T) {
	data := buildWorkbook(t, 12,
		[]interface{}{"DNI / CE"},
		[]interface{}{"12345678"},
	)

	doc, err := Parse(data, "Sheet1", 12)
	require.NoError(t, err)

	assert.Equal(t, []string{"DNI / CE"}, doc.Headers())
	assert.Len(t, doc.DataRows(), 1)
}

func TestParseUnknownSheet(t *testing.T) {
	data := buildWorkbook(t, 1, []interface{}{"DNI / CE"})

	_, err := Parse(data, "Hoja2", 1)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "SCHEMA_MISMATCH", de.Code)
	assert.Equal(t, []string{"Sheet1"}, de.Details["sheets"])
}

func TestParseHeaderRowBeyondSheet(t *testing.T) {
	data := buildWorkbook(t, 1, []interface{}{"DNI / CE"})

	_, err := Parse(data, "", 12)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "SCHEMA_MISMATCH", de.Code)
}

func TestParseRejectsNonWorkbookBytes(t *testing.T) {
	_, err := Parse([]byte("<html>not a workbook</html>"), "", 1)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "UPSTREAM_FETCH_FAILED", de.Code)
}
