package service

import (
	"eduanalytics_backend/internals/features/analytics/dto"
)

// PassRate = passed/total*100; 0 untuk set kosong (bukan error).
func PassRate(passed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(passed) / float64(total) * 100
}

// RetentionRate = active/total*100; 0 untuk populasi kosong.
func RetentionRate(active, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(active) / float64(total) * 100
}

// OverallPerformance meratakan GPA/average-grade/pass-rate lintas record
// per-student dan menjumlahkan courses-taken/credits-completed.
// StudentID nil menandakan entry agregat. Set kosong menghasilkan nol.
func OverallPerformance(metrics []dto.PerformanceMetrics) dto.PerformanceMetrics {
	overall := dto.PerformanceMetrics{}
	if len(metrics) == 0 {
		return overall
	}

	var gpaSum, gradeSum, passSum float64
	for _, m := range metrics {
		gpaSum += m.GPA
		gradeSum += m.AverageGrade
		passSum += m.PassRate
		overall.CreditsCompleted += m.CreditsCompleted
		overall.CoursesTaken += m.CoursesTaken
	}

	n := float64(len(metrics))
	overall.GPA = gpaSum / n
	overall.AverageGrade = gradeSum / n
	overall.PassRate = passSum / n
	return overall
}
