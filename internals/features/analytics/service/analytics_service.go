package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/analytics/dto"
	whModel "eduanalytics_backend/internals/features/warehouse/model"
)

// Placeholder analytics: nilainya konstanta bernama, belum dihitung dari
// data (menunggu logika status enrollment yang lebih kaya).
const (
	courseCompletionRatePct    = 100.0
	departmentGraduationRatePct = 85.0

	kpiGraduationRatePct    = 78.5
	kpiAverageGPA           = 3.2
	kpiStudentSatisfaction  = 4.2
	kpiFacultyRatio         = 15.2
	kpiBudgetUtilizationPct = 87.3
)

// AnalyticsService: aggregation engine di atas star schema.
// Semua operasi toleran terhadap zero matching rows — hasil kosong atau
// agregat nol, tidak pernah error.
type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

/* =========================================================
   Performance metrics (per student)
   ========================================================= */

type performanceRow struct {
	StudentID        uuid.UUID
	GPA              *float64
	CreditsCompleted *int64
	CoursesTaken     int64
	AverageGrade     *float64
	PassedCourses    int64
}

func (s *AnalyticsService) PerformanceMetrics(f dto.AnalyticsFilter) ([]dto.PerformanceMetrics, error) {
	q := s.DB.Model(&whModel.PerformanceFactModel{}).
		Select(`performance_student_id AS student_id,
			AVG(performance_grade_points) AS gpa,
			SUM(performance_credits_earned) AS credits_completed,
			COUNT(*) AS courses_taken,
			AVG(performance_final_score) AS average_grade,
			COUNT(*) FILTER (WHERE performance_is_pass) AS passed_courses`).
		Joins("JOIN dim_time ON dim_time.time_id = student_performance_fact.performance_time_id")

	if f.StudentID != nil {
		q = q.Where("performance_student_id = ?", *f.StudentID)
	}
	if f.CourseID != nil {
		q = q.Where("performance_course_id = ?", *f.CourseID)
	}
	if f.StartDate != nil {
		q = q.Where("dim_time.time_date >= ?", f.StartDate.Format("2006-01-02"))
	}
	if f.EndDate != nil {
		q = q.Where("dim_time.time_date <= ?", f.EndDate.Format("2006-01-02"))
	}

	var rows []performanceRow
	if err := q.Group("performance_student_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.PerformanceMetrics, 0, len(rows))
	for _, r := range rows {
		id := r.StudentID
		m := dto.PerformanceMetrics{
			StudentID:    &id,
			CoursesTaken: r.CoursesTaken,
			PassRate:     PassRate(r.PassedCourses, r.CoursesTaken),
		}
		if r.GPA != nil {
			m.GPA = *r.GPA
		}
		if r.CreditsCompleted != nil {
			m.CreditsCompleted = *r.CreditsCompleted
		}
		if r.AverageGrade != nil {
			m.AverageGrade = *r.AverageGrade
		}
		out = append(out, m)
	}
	return out, nil
}

/* =========================================================
   Enrollment stats (single aggregate record)
   ========================================================= */

// studentBase: base query populasi student, dengan join best-effort
// major↔course_name kalau difilter per department (lihat DESIGN.md).
func (s *AnalyticsService) studentBase(departmentID *uuid.UUID) *gorm.DB {
	q := s.DB.Model(&whModel.StudentModel{})
	if departmentID != nil {
		q = q.
			Joins("JOIN dim_course ON dim_student.student_major = dim_course.course_name").
			Where("dim_course.course_department_id = ?", *departmentID).
			Distinct("dim_student.student_id")
	}
	return q
}

func (s *AnalyticsService) EnrollmentStats(f dto.AnalyticsFilter) (dto.EnrollmentStats, error) {
	stats := dto.EnrollmentStats{}

	if err := s.studentBase(f.DepartmentID).Count(&stats.TotalStudents).Error; err != nil {
		return stats, err
	}
	if err := s.studentBase(f.DepartmentID).
		Where("student_status = ?", whModel.StudentStatusActive).
		Count(&stats.ActiveStudents).Error; err != nil {
		return stats, err
	}
	if err := s.studentBase(f.DepartmentID).
		Where("student_status = ?", whModel.StudentStatusGraduated).
		Count(&stats.GraduatedStudents).Error; err != nil {
		return stats, err
	}

	// New enrollments hanya dihitung kalau range lengkap
	if f.StartDate != nil && f.EndDate != nil {
		if err := s.studentBase(f.DepartmentID).
			Where("student_enrollment_date >= ? AND student_enrollment_date <= ?",
				f.StartDate.Format("2006-01-02"), f.EndDate.Format("2006-01-02")).
			Count(&stats.NewEnrollments).Error; err != nil {
			return stats, err
		}
	}

	stats.RetentionRate = RetentionRate(stats.ActiveStudents, stats.TotalStudents)
	return stats, nil
}

/* =========================================================
   Course stats (per course)
   ========================================================= */

type courseStatsRow struct {
	CourseID         uuid.UUID
	CourseName       string
	TotalEnrollments int64
	AverageGrade     *float64
	PassedStudents   int64
	TotalStudents    int64
}

func (s *AnalyticsService) CourseStats(f dto.AnalyticsFilter) ([]dto.CourseStats, error) {
	q := s.DB.Model(&whModel.CourseModel{}).
		Select(`dim_course.course_id,
			dim_course.course_name,
			(SELECT COUNT(*) FROM enrollment_fact e
				WHERE e.enrollment_course_id = dim_course.course_id) AS total_enrollments,
			(SELECT AVG(p.performance_final_score) FROM student_performance_fact p
				WHERE p.performance_course_id = dim_course.course_id) AS average_grade,
			(SELECT COUNT(*) FROM student_performance_fact p
				WHERE p.performance_course_id = dim_course.course_id
				AND p.performance_is_pass) AS passed_students,
			(SELECT COUNT(*) FROM student_performance_fact p
				WHERE p.performance_course_id = dim_course.course_id) AS total_students`)

	if f.DepartmentID != nil {
		q = q.Where("dim_course.course_department_id = ?", *f.DepartmentID)
	}
	if f.Level != nil {
		q = q.Where("dim_course.course_level = ?", *f.Level)
	}

	var rows []courseStatsRow
	if err := q.Order("dim_course.course_code ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.CourseStats, 0, len(rows))
	for _, r := range rows {
		cs := dto.CourseStats{
			CourseID:         r.CourseID,
			CourseName:       r.CourseName,
			TotalEnrollments: r.TotalEnrollments,
			PassRate:         PassRate(r.PassedStudents, r.TotalStudents),
			CompletionRate:   courseCompletionRatePct,
		}
		if r.AverageGrade != nil {
			cs.AverageGrade = *r.AverageGrade
		}
		out = append(out, cs)
	}
	return out, nil
}

/* =========================================================
   Department stats (per department)
   ========================================================= */

type departmentStatsRow struct {
	DepartmentID   uuid.UUID
	DepartmentName string
	TotalCourses   int64
	TotalStudents  int64
	AverageGPA     *float64
}

func (s *AnalyticsService) DepartmentStats(_ dto.AnalyticsFilter) ([]dto.DepartmentStats, error) {
	// Student→department via major↔course_name match, bukan FK ternormalisasi.
	var rows []departmentStatsRow
	err := s.DB.Raw(`
		SELECT d.department_id,
		       d.department_name,
		       COUNT(DISTINCT c.course_id)  AS total_courses,
		       COUNT(DISTINCT s.student_id) AS total_students,
		       AVG(pf.performance_grade_points) AS average_gpa
		FROM dim_department d
		LEFT JOIN dim_course c ON c.course_department_id = d.department_id
		LEFT JOIN dim_student s ON s.student_major = c.course_name
		LEFT JOIN student_performance_fact pf ON pf.performance_student_id = s.student_id
		GROUP BY d.department_id, d.department_name
		ORDER BY d.department_name ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.DepartmentStats, 0, len(rows))
	for _, r := range rows {
		ds := dto.DepartmentStats{
			DepartmentID:   r.DepartmentID,
			DepartmentName: r.DepartmentName,
			TotalCourses:   r.TotalCourses,
			TotalStudents:  r.TotalStudents,
			GraduationRate: departmentGraduationRatePct,
		}
		if r.AverageGPA != nil {
			ds.AverageGPA = *r.AverageGPA
		}
		out = append(out, ds)
	}
	return out, nil
}

/* =========================================================
   Dashboard & KPI
   ========================================================= */

func (s *AnalyticsService) Dashboard(f dto.AnalyticsFilter) (dto.DashboardData, error) {
	perf, err := s.PerformanceMetrics(dto.AnalyticsFilter{StartDate: f.StartDate, EndDate: f.EndDate})
	if err != nil {
		return dto.DashboardData{}, err
	}
	enroll, err := s.EnrollmentStats(f)
	if err != nil {
		return dto.DashboardData{}, err
	}
	courses, err := s.CourseStats(f)
	if err != nil {
		return dto.DashboardData{}, err
	}
	departments, err := s.DepartmentStats(f)
	if err != nil {
		return dto.DashboardData{}, err
	}

	return dto.DashboardData{
		PerformanceMetrics: OverallPerformance(perf),
		EnrollmentStats:    enroll,
		CourseStats:        courses,
		DepartmentStats:    departments,
	}, nil
}

func (s *AnalyticsService) InstitutionalKPIs(f dto.AnalyticsFilter) (map[string]float64, error) {
	enroll, err := s.EnrollmentStats(f)
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"retention_rate":       enroll.RetentionRate,
		"graduation_rate":      kpiGraduationRatePct,
		"average_gpa":          kpiAverageGPA,
		"student_satisfaction": kpiStudentSatisfaction,
		"faculty_ratio":        kpiFacultyRatio,
		"budget_utilization":   kpiBudgetUtilizationPct,
	}, nil
}

/* =========================================================
   Trend queries (calendar buckets via dim_time)
   ========================================================= */

func (s *AnalyticsService) PerformanceTrends(p Period, f dto.AnalyticsFilter) (dto.TrendSeries[dto.PerformanceTrendPoint], error) {
	series := dto.TrendSeries[dto.PerformanceTrendPoint]{Period: string(p), Trends: []dto.PerformanceTrendPoint{}}

	q := s.DB.Model(&whModel.PerformanceFactModel{}).
		Select(BucketExpr(p, "dim_time.time_date") + ` AS bucket,
			COUNT(*) AS count,
			COALESCE(AVG(performance_grade_points), 0) AS avg_grade_points,
			COALESCE(AVG(performance_final_score), 0) AS avg_final_score`).
		Joins("JOIN dim_time ON dim_time.time_id = student_performance_fact.performance_time_id")

	if f.StudentID != nil {
		q = q.Where("performance_student_id = ?", *f.StudentID)
	}
	if f.CourseID != nil {
		q = q.Where("performance_course_id = ?", *f.CourseID)
	}

	err := q.Group("bucket").Order("bucket ASC").Scan(&series.Trends).Error
	return series, err
}

func (s *AnalyticsService) EnrollmentTrends(p Period, f dto.AnalyticsFilter) (dto.TrendSeries[dto.EnrollmentTrendPoint], error) {
	series := dto.TrendSeries[dto.EnrollmentTrendPoint]{Period: string(p), Trends: []dto.EnrollmentTrendPoint{}}

	q := s.DB.Model(&whModel.EnrollmentFactModel{}).
		Select(BucketExpr(p, "dim_time.time_date") + ` AS bucket,
			COUNT(*) AS enrollments,
			COUNT(*) FILTER (WHERE enrollment_is_dropped) AS dropped,
			COUNT(*) FILTER (WHERE enrollment_is_completed) AS completed`).
		Joins("JOIN dim_time ON dim_time.time_id = enrollment_fact.enrollment_time_id")

	if f.DepartmentID != nil {
		q = q.
			Joins("JOIN dim_course ON dim_course.course_id = enrollment_fact.enrollment_course_id").
			Where("dim_course.course_department_id = ?", *f.DepartmentID)
	}

	err := q.Group("bucket").Order("bucket ASC").Scan(&series.Trends).Error
	return series, err
}
