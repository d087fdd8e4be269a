package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 10)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Size)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 5, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromPageEdges(t *testing.T) {
	// set kosong tetap dilaporkan sebagai satu halaman
	empty := BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	// halaman terakhir
	last := BuildPaginationFromPage(21, 3, 10)
	assert.Equal(t, 3, last.TotalPages)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
}
