package dto

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsFilter: semua predikat opsional, dikombinasikan AND.
type AnalyticsFilter struct {
	StudentID    *uuid.UUID
	CourseID     *uuid.UUID
	DepartmentID *uuid.UUID
	Level        *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// PerformanceMetrics: satu record per student di filtered set.
// StudentID nil menandakan entry "overall" di dashboard.
type PerformanceMetrics struct {
	StudentID        *uuid.UUID `json:"student_id"`
	GPA              float64    `json:"gpa"`
	CreditsCompleted int64      `json:"credits_completed"`
	CoursesTaken     int64      `json:"courses_taken"`
	AverageGrade     float64    `json:"average_grade"`
	PassRate         float64    `json:"pass_rate"`
}

type EnrollmentStats struct {
	TotalStudents     int64   `json:"total_students"`
	ActiveStudents    int64   `json:"active_students"`
	GraduatedStudents int64   `json:"graduated_students"`
	NewEnrollments    int64   `json:"new_enrollments"`
	RetentionRate     float64 `json:"retention_rate"`
}

type CourseStats struct {
	CourseID         uuid.UUID `json:"course_id"`
	CourseName       string    `json:"course_name"`
	TotalEnrollments int64     `json:"total_enrollments"`
	AverageGrade     float64   `json:"average_grade"`
	PassRate         float64   `json:"pass_rate"`
	CompletionRate   float64   `json:"completion_rate"`
}

type DepartmentStats struct {
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	TotalCourses   int64     `json:"total_courses"`
	TotalStudents  int64     `json:"total_students"`
	AverageGPA     float64   `json:"average_gpa"`
	GraduationRate float64   `json:"graduation_rate"`
}

type DashboardData struct {
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	EnrollmentStats    EnrollmentStats    `json:"enrollment_stats"`
	CourseStats        []CourseStats      `json:"course_stats"`
	DepartmentStats    []DepartmentStats  `json:"department_stats"`
}

type PerformanceTrendPoint struct {
	Bucket         string  `json:"date"`
	Count          int64   `json:"count"`
	AvgGradePoints float64 `json:"avg_grade_points"`
	AvgFinalScore  float64 `json:"avg_final_score"`
}

type EnrollmentTrendPoint struct {
	Bucket      string `json:"date"`
	Enrollments int64  `json:"enrollments"`
	Dropped     int64  `json:"dropped"`
	Completed   int64  `json:"completed"`
}

type TrendSeries[T any] struct {
	Period string `json:"period"`
	Trends []T    `json:"trends"`
}
