package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduanalytics_backend/internals/features/analytics/dto"
)

func TestPassRate(t *testing.T) {
	assert.Equal(t, 0.0, PassRate(0, 0))
	assert.Equal(t, 50.0, PassRate(1, 2))
	assert.Equal(t, 100.0, PassRate(3, 3))
	assert.InDelta(t, 33.3333, PassRate(1, 3), 0.001)
}

func TestRetentionRate(t *testing.T) {
	assert.Equal(t, 0.0, RetentionRate(0, 0))
	assert.Equal(t, 80.0, RetentionRate(8, 10))
	assert.Equal(t, 100.0, RetentionRate(5, 5))
}

func TestOverallPerformanceEmpty(t *testing.T) {
	overall := OverallPerformance(nil)
	assert.Nil(t, overall.StudentID)
	assert.Equal(t, 0.0, overall.GPA)
	assert.Equal(t, int64(0), overall.CoursesTaken)
}

func TestOverallPerformance(t *testing.T) {
	metrics := []dto.PerformanceMetrics{
		{GPA: 3.0, AverageGrade: 80, PassRate: 100, CreditsCompleted: 12, CoursesTaken: 4},
		{GPA: 2.0, AverageGrade: 60, PassRate: 50, CreditsCompleted: 6, CoursesTaken: 2},
	}
	overall := OverallPerformance(metrics)

	assert.Nil(t, overall.StudentID)
	assert.InDelta(t, 2.5, overall.GPA, 0.0001)
	assert.InDelta(t, 70.0, overall.AverageGrade, 0.0001)
	assert.InDelta(t, 75.0, overall.PassRate, 0.0001)
	assert.Equal(t, int64(18), overall.CreditsCompleted)
	assert.Equal(t, int64(6), overall.CoursesTaken)
}
