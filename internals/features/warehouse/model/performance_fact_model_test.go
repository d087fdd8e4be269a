package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalScoreFrom(t *testing.T) {
	// bobot 40/60
	assert.InDelta(t, 76.0, FinalScoreFrom(70, 80), 0.0001)
	assert.InDelta(t, 100.0, FinalScoreFrom(100, 100), 0.0001)
	assert.InDelta(t, 0.0, FinalScoreFrom(0, 0), 0.0001)
}

func TestIsPassing(t *testing.T) {
	assert.False(t, IsPassing(59.99))
	assert.True(t, IsPassing(60.0))
	assert.True(t, IsPassing(85.0))
}

func TestRecomputeMeasures(t *testing.T) {
	f := PerformanceFactModel{
		PerformanceGradePoints:     3.5,
		PerformanceAssignmentScore: 50,
		PerformanceExamScore:       100,
	}
	f.RecomputeMeasures()

	assert.InDelta(t, 80.0, f.PerformanceFinalScore, 0.0001)
	assert.True(t, f.PerformanceIsPass)
	assert.Equal(t, "A-", f.PerformanceLetterGrade)
}

func TestRecomputeMeasuresKeepsExplicitLetterGrade(t *testing.T) {
	f := PerformanceFactModel{
		PerformanceGradePoints:     4.0,
		PerformanceAssignmentScore: 90,
		PerformanceExamScore:       95,
		PerformanceLetterGrade:     "B",
	}
	f.RecomputeMeasures()
	assert.Equal(t, "B", f.PerformanceLetterGrade)
}

func TestLetterGradeFromPoints(t *testing.T) {
	tests := []struct {
		points   float64
		expected string
	}{
		{4.0, "A"},
		{3.7, "A"},
		{3.5, "A-"},
		{3.3, "A-"},
		{3.1, "B+"},
		{2.8, "B"},
		{2.5, "B-"},
		{2.1, "C+"},
		{1.8, "C"},
		{1.5, "C-"},
		{1.0, "D"},
		{0.5, "F"},
		{0.0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LetterGradeFromPoints(tt.points), "points=%v", tt.points)
	}
}
