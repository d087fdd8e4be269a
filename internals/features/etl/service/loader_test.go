package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireField(t *testing.T) {
	row := map[string]string{"a": "nilai", "b": "  ", "c": ""}

	v, err := requireField(row, "a")
	require.NoError(t, err)
	assert.Equal(t, "nilai", v)

	_, err = requireField(row, "b")
	assert.Error(t, err)
	_, err = requireField(row, "c")
	assert.Error(t, err)
	_, err = requireField(row, "tidak_ada")
	assert.Error(t, err)
}

func TestParseDateField(t *testing.T) {
	d, err := parseDateField(map[string]string{"d": "2024-03-15"}, "d")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = parseDateField(map[string]string{"d": "15/03/2024"}, "d")
	assert.Error(t, err)
}

func TestParseNumericFields(t *testing.T) {
	row := map[string]string{"f": "3.75", "i": "4", "bad": "abc"}

	f, err := parseFloatField(row, "f")
	require.NoError(t, err)
	assert.InDelta(t, 3.75, f, 0.0001)

	n, err := parseIntField(row, "i")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = parseFloatField(row, "bad")
	assert.Error(t, err)
	_, err = parseIntField(row, "f")
	assert.Error(t, err)
}

func TestOptionalField(t *testing.T) {
	row := map[string]string{"x": " isi ", "y": "  "}

	v := optionalField(row, "x")
	require.NotNil(t, v)
	assert.Equal(t, "isi", *v)

	assert.Nil(t, optionalField(row, "y"))
	assert.Nil(t, optionalField(row, "z"))
}
