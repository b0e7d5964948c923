package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterFixture(t *testing.T) (*Document, ColumnMap) {
	t.Helper()

	data := buildWorkbook(t, 1,
		[]interface{}{"CODIGO", HeaderName, HeaderIdentifier, HeaderExpiry, HeaderStatus},
		[]interface{}{"X-1", "Jane Doe", "12345678", "2026-01-01", "APPROVED"},
		[]interface{}{"X-2", "John Roe", "87654321", "2025-06-30", "PENDING"},
		[]interface{}{"X-3", "Jane Dupe", "12345678", "2020-01-01", "REJECTED"},
	)

	doc, err := Parse(data, "", 1)
	require.NoError(t, err)

	cols, err := ResolveColumns(doc.Headers())
	require.NoError(t, err)
	return doc, cols
}

func TestFindProjectsMatchingRow(t *testing.T) {
	doc, cols := rosterFixture(t)

	record, ok := Find(doc, cols, "87654321")
	require.True(t, ok)

	assert.Equal(t, "John Roe", record.Name)
	assert.Equal(t, "87654321", record.Identifier)
	assert.Equal(t, "2025-06-30", record.ExpiryDate)
	assert.Equal(t, "PENDING", record.Status)
}

func TestFindNormalizesQueryIdentifier(t *testing.T) {
	doc, cols := rosterFixture(t)

	record, ok := Find(doc, cols, "  87654321 ")
	require.True(t, ok)
	assert.Equal(t, "87654321", record.Identifier)
}

func TestFindMissReturnsNotFound(t *testing.T) {
	doc, cols := rosterFixture(t)

	record, ok := Find(doc, cols, "00000000")
	assert.False(t, ok)
	assert.Nil(t, record)
}

func TestFindEmptyIdentifierNeverMatches(t *testing.T) {
	doc, cols := rosterFixture(t)

	_, ok := Find(doc, cols, "   ")
	assert.False(t, ok)
}

func TestFindFirstDuplicateWins(t *testing.T) {
	doc, cols := rosterFixture(t)

	record, ok := Find(doc, cols, "12345678")
	require.True(t, ok)

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "APPROVED", record.Status)
}
