package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderForKnownKinds(t *testing.T) {
	for _, kind := range []string{"student", "course", "performance", " Student "} {
		loader, err := LoaderFor(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, loader.RequiredColumns())
	}
}

func TestLoaderForUnknownKind(t *testing.T) {
	for _, kind := range []string{"", "instructor", "grades"} {
		_, err := LoaderFor(kind)
		assert.Error(t, err, kind)
	}
}

func TestValidateRowsEmptyFile(t *testing.T) {
	loader, err := LoaderFor("student")
	require.NoError(t, err)

	res := ValidateRows(loader, "empty.csv", FileKindCSV, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, 0, res.RowCount)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "error", res.Issues[0].Level)
}

func TestValidateRowsMissingColumnsIsWarning(t *testing.T) {
	loader, err := LoaderFor("student")
	require.NoError(t, err)

	rows := []map[string]string{
		{"student_number": "S001", "first_name": "Budi"},
	}
	res := ValidateRows(loader, "partial.csv", FileKindCSV, rows)

	// kolom hilang cuma warning, file tetap valid
	assert.True(t, res.Valid)
	assert.Equal(t, 1, res.RowCount)
	assert.NotEmpty(t, res.Issues)
	for _, issue := range res.Issues {
		assert.Equal(t, "warning", issue.Level)
	}
	assert.Equal(t, []string{"first_name", "student_number"}, res.Columns)
}

func TestValidateRowsComplete(t *testing.T) {
	loader, err := LoaderFor("student")
	require.NoError(t, err)

	row := map[string]string{}
	for _, col := range loader.RequiredColumns() {
		row[col] = "x"
	}
	res := ValidateRows(loader, "full.csv", FileKindCSV, []map[string]string{row})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)
}

func TestDataSources(t *testing.T) {
	sources := DataSources()
	require.Len(t, sources, 3)

	kinds := map[string]bool{}
	for _, src := range sources {
		kinds[src.Kind] = true
		assert.NotEmpty(t, src.RequiredColumns, src.Kind)
		assert.NotEmpty(t, src.Description, src.Kind)
	}
	assert.True(t, kinds["student"])
	assert.True(t, kinds["course"])
	assert.True(t, kinds["performance"])
}
