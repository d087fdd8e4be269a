package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexNameFromDDL(t *testing.T) {
	assert.Equal(t, "idx_perf_student_course",
		indexNameFromDDL(`CREATE INDEX IF NOT EXISTS idx_perf_student_course ON student_performance_fact (a, b)`))
	assert.Equal(t, "idx_time_date",
		indexNameFromDDL(`CREATE INDEX IF NOT EXISTS idx_time_date ON dim_time (time_date)`))
}

func TestAnalyzeQueryRejectsNonSelect(t *testing.T) {
	svc := &OptimizationService{}

	// statement non-SELECT ditolak sebelum menyentuh database
	for _, q := range []string{
		"DELETE FROM dim_student",
		"DROP TABLE feedback",
		"UPDATE dim_course SET course_is_active = false",
		"",
	} {
		_, err := svc.AnalyzeQuery(q)
		assert.Error(t, err, q)
	}
}
