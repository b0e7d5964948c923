package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

func TestResolveColumnsByHeaderText(t *testing.T) {
	// arbitrary order, accent drift, irregular spacing and casing
	headers := []string{
		"dni / ce",
		"Estatus de  Proceso de Habilitación",
		" Nombres y Apellidos ",
		"FECHA DE VIGENCIA DE HABILITACION DE LICENCIA INTERNA",
	}

	cols, err := ResolveColumns(headers)
	require.NoError(t, err)

	assert.Equal(t, 0, cols.Identifier)
	assert.Equal(t, 1, cols.Status)
	assert.Equal(t, 2, cols.Name)
	assert.Equal(t, 3, cols.Expiry)
}

func TestResolveColumnsFallsBackToFixedPositions(t *testing.T) {
	// wide sheet where the expiry header was renamed beyond recognition
	headers := make([]string, 33)
	headers[0] = HeaderName
	headers[1] = HeaderIdentifier
	headers[2] = HeaderStatus
	headers[31] = "VIGENCIA (EDITADO)"

	cols, err := ResolveColumns(headers)
	require.NoError(t, err)

	assert.Equal(t, 0, cols.Name)
	assert.Equal(t, 1, cols.Identifier)
	assert.Equal(t, 2, cols.Status)
	// column AF
	assert.Equal(t, 31, cols.Expiry)
}

func TestResolveColumnsAllFallbacks(t *testing.T) {
	headers := make([]string, 33)
	for i := range headers {
		headers[i] = "COL"
	}

	cols, err := ResolveColumns(headers)
	require.NoError(t, err)

	// columns D, E, AF, AG
	assert.Equal(t, 3, cols.Name)
	assert.Equal(t, 4, cols.Identifier)
	assert.Equal(t, 31, cols.Expiry)
	assert.Equal(t, 32, cols.Status)
}

func TestResolveColumnsMissingFieldBeyondWidth(t *testing.T) {
	// narrow sheet: expiry neither named nor reachable by fallback
	headers := []string{HeaderName, HeaderIdentifier, HeaderStatus}

	_, err := ResolveColumns(headers)

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "SCHEMA_MISMATCH", de.Code)
	assert.Equal(t, []string{HeaderExpiry}, de.Details["missing"])

	observed, ok := de.Details["headers"].([]string)
	require.True(t, ok)
	assert.Len(t, observed, 3)
}
