package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileKind(t *testing.T) {
	tests := []struct {
		fileName string
		expected FileKind
	}{
		{"students.csv", FileKindCSV},
		{"students.txt", FileKindCSV},
		{"STUDENTS.CSV", FileKindCSV},
		{"grades.xlsx", FileKindExcel},
		{"grades.xls", FileKindExcel},
		{"feedback.json", FileKindJSON},
	}
	for _, tt := range tests {
		kind, err := DetectFileKind(tt.fileName)
		require.NoError(t, err, tt.fileName)
		assert.Equal(t, tt.expected, kind, tt.fileName)
	}
}

func TestDetectFileKindRejected(t *testing.T) {
	for _, name := range []string{"data.pdf", "data.exe", "data", "archive.zip"} {
		_, err := DetectFileKind(name)
		assert.Error(t, err, name)
	}
}

func TestParseCSV(t *testing.T) {
	input := "Student_Number,First_Name, Last_Name\nS001,Budi,Santoso\nS002,Siti,Rahma\n"
	rows, err := ParseRows(strings.NewReader(input), FileKindCSV)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// header dinormalisasi lowercase
	assert.Equal(t, "S001", rows[0]["student_number"])
	assert.Equal(t, "Budi", rows[0]["first_name"])
	assert.Equal(t, "Santoso", rows[0]["last_name"])
	assert.Equal(t, "Siti", rows[1]["first_name"])
}

func TestParseCSVEmpty(t *testing.T) {
	rows, err := ParseRows(strings.NewReader(""), FileKindCSV)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseJSON(t *testing.T) {
	input := `[{"Student_Number":"S001","credits":3,"note":null},{"student_number":"S002","credits":4}]`
	rows, err := ParseRows(strings.NewReader(input), FileKindJSON)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "S001", rows[0]["student_number"])
	assert.Equal(t, "3", rows[0]["credits"])
	// null di-skip, bukan string "nil"
	_, ok := rows[0]["note"]
	assert.False(t, ok)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseRows(strings.NewReader(`{"bukan":"array"}`), FileKindJSON)
	assert.Error(t, err)
}
