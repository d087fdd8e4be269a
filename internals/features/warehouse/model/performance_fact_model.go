package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// final = 0.4*assignment + 0.6*exam, lulus di 60
	AssignmentWeight = 0.4
	ExamWeight       = 0.6
	PassThreshold    = 60.0
)

type PerformanceFactModel struct {
	PerformanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:performance_id" json:"performance_id"`

	// Dimension refs
	PerformanceStudentID    uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_student_time;column:performance_student_id"    json:"performance_student_id"`
	PerformanceCourseID     uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_course_time;column:performance_course_id"      json:"performance_course_id"`
	PerformanceInstructorID uuid.UUID `gorm:"type:uuid;not null;index;column:performance_instructor_id"                              json:"performance_instructor_id"`
	PerformanceTimeID       uuid.UUID `gorm:"type:uuid;not null;index:idx_performance_student_time;index:idx_performance_course_time;column:performance_time_id" json:"performance_time_id"`

	// Measures
	PerformanceGradePoints          float64  `gorm:"not null;column:performance_grade_points"          json:"performance_grade_points"`
	PerformanceLetterGrade          string   `gorm:"type:varchar(2);not null;column:performance_letter_grade" json:"performance_letter_grade"`
	PerformanceCreditsEarned        int      `gorm:"not null;column:performance_credits_earned"        json:"performance_credits_earned"`
	PerformanceAttendancePercentage *float64 `gorm:"column:performance_attendance_percentage"          json:"performance_attendance_percentage,omitempty"`
	PerformanceAssignmentScore      float64  `gorm:"not null;column:performance_assignment_score"      json:"performance_assignment_score"`
	PerformanceExamScore            float64  `gorm:"not null;column:performance_exam_score"            json:"performance_exam_score"`
	PerformanceFinalScore           float64  `gorm:"not null;column:performance_final_score"           json:"performance_final_score"`
	PerformanceIsPass               bool     `gorm:"not null;index;column:performance_is_pass"         json:"performance_is_pass"`

	PerformanceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:performance_created_at" json:"performance_created_at"`
}

func (PerformanceFactModel) TableName() string { return "student_performance_fact" }

// FinalScoreFrom menghitung final score dari bobot tetap.
func FinalScoreFrom(assignment, exam float64) float64 {
	return assignment*AssignmentWeight + exam*ExamWeight
}

// IsPassing konsisten dengan threshold 60.
func IsPassing(finalScore float64) bool {
	return finalScore >= PassThreshold
}

// RecomputeMeasures menurunkan final_score dan is_pass dari skor mentah.
// Dipanggil di setiap jalur tulis supaya invariannya tidak pernah melenceng.
func (f *PerformanceFactModel) RecomputeMeasures() {
	f.PerformanceFinalScore = FinalScoreFrom(f.PerformanceAssignmentScore, f.PerformanceExamScore)
	f.PerformanceIsPass = IsPassing(f.PerformanceFinalScore)
	if f.PerformanceLetterGrade == "" {
		f.PerformanceLetterGrade = LetterGradeFromPoints(f.PerformanceGradePoints)
	}
}

// LetterGradeFromPoints memetakan grade points (0.0–4.0) ke letter grade.
func LetterGradeFromPoints(gp float64) string {
	switch {
	case gp >= 3.7:
		return "A"
	case gp >= 3.3:
		return "A-"
	case gp >= 3.0:
		return "B+"
	case gp >= 2.7:
		return "B"
	case gp >= 2.3:
		return "B-"
	case gp >= 2.0:
		return "C+"
	case gp >= 1.7:
		return "C"
	case gp >= 1.3:
		return "C-"
	case gp >= 1.0:
		return "D"
	default:
		return "F"
	}
}
