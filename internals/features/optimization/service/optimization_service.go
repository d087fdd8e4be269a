package service

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

type OptimizationService struct {
	DB *gorm.DB
}

func NewOptimizationService(db *gorm.DB) *OptimizationService {
	return &OptimizationService{DB: db}
}

/* =========================================================
   Indexes
   ========================================================= */

// Semua DDL idempotent (IF NOT EXISTS), aman dipanggil berulang.
var performanceIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_perf_student_course ON student_performance_fact (performance_student_id, performance_course_id)`,
	`CREATE INDEX IF NOT EXISTS idx_perf_time_pass ON student_performance_fact (performance_time_id, performance_is_pass)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollment_course_time ON enrollment_fact (enrollment_course_id, enrollment_time_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_student_time ON attendance_fact (attendance_student_id, attendance_time_id)`,
	`CREATE INDEX IF NOT EXISTS idx_student_major_status ON dim_student (student_major, student_status)`,
	`CREATE INDEX IF NOT EXISTS idx_course_dept_level ON dim_course (course_department_id, course_level)`,
	`CREATE INDEX IF NOT EXISTS idx_time_date ON dim_time (time_date)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_tags_gin ON feedback USING gin (feedback_tags)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_answers_gin ON survey_responses USING gin (survey_response_answers)`,
}

// CreateIndexes membuat index set standar untuk query analytics.
func (s *OptimizationService) CreateIndexes() (created []string, err error) {
	for _, ddl := range performanceIndexes {
		if execErr := s.DB.Exec(ddl).Error; execErr != nil {
			return created, fmt.Errorf("exec %q: %w", ddl, execErr)
		}
		created = append(created, indexNameFromDDL(ddl))
	}
	return created, nil
}

func indexNameFromDDL(ddl string) string {
	fields := strings.Fields(ddl)
	for i, f := range fields {
		if strings.EqualFold(f, "EXISTS") && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ddl
}

/* =========================================================
   Materialized views
   ========================================================= */

var materializedViews = map[string]string{
	"mv_student_performance_summary": `
		CREATE MATERIALIZED VIEW IF NOT EXISTS mv_student_performance_summary AS
		SELECT pf.performance_student_id AS student_id,
		       AVG(pf.performance_grade_points) AS gpa,
		       SUM(pf.performance_credits_earned) AS credits_completed,
		       COUNT(*) AS courses_taken,
		       AVG(pf.performance_final_score) AS average_grade,
		       COUNT(*) FILTER (WHERE pf.performance_is_pass) AS passed_courses
		FROM student_performance_fact pf
		GROUP BY pf.performance_student_id`,

	"mv_course_performance_summary": `
		CREATE MATERIALIZED VIEW IF NOT EXISTS mv_course_performance_summary AS
		SELECT pf.performance_course_id AS course_id,
		       COUNT(*) AS total_records,
		       AVG(pf.performance_final_score) AS average_grade,
		       COUNT(*) FILTER (WHERE pf.performance_is_pass) AS passed_students
		FROM student_performance_fact pf
		GROUP BY pf.performance_course_id`,

	"mv_department_statistics": `
		CREATE MATERIALIZED VIEW IF NOT EXISTS mv_department_statistics AS
		SELECT d.department_id,
		       d.department_name,
		       COUNT(DISTINCT c.course_id) AS total_courses,
		       COUNT(DISTINCT s.student_id) AS total_students,
		       AVG(pf.performance_grade_points) AS average_gpa
		FROM dim_department d
		LEFT JOIN dim_course c ON c.course_department_id = d.department_id
		LEFT JOIN dim_student s ON s.student_major = c.course_name
		LEFT JOIN student_performance_fact pf ON pf.performance_student_id = s.student_id
		GROUP BY d.department_id, d.department_name`,

	"mv_monthly_enrollment_trends": `
		CREATE MATERIALIZED VIEW IF NOT EXISTS mv_monthly_enrollment_trends AS
		SELECT to_char(t.time_date, 'YYYY-MM') AS month,
		       COUNT(*) AS enrollments,
		       COUNT(*) FILTER (WHERE e.enrollment_is_dropped) AS dropped,
		       COUNT(*) FILTER (WHERE e.enrollment_is_completed) AS completed
		FROM enrollment_fact e
		JOIN dim_time t ON t.time_id = e.enrollment_time_id
		GROUP BY to_char(t.time_date, 'YYYY-MM')`,
}

func (s *OptimizationService) CreateMaterializedViews() (created []string, err error) {
	for name, ddl := range materializedViews {
		if execErr := s.DB.Exec(ddl).Error; execErr != nil {
			return created, fmt.Errorf("create %s: %w", name, execErr)
		}
		created = append(created, name)
	}
	return created, nil
}

// RefreshMaterializedViews merefresh semua view; view yang belum ada
// cuma di-log, tidak menggagalkan sisanya.
func (s *OptimizationService) RefreshMaterializedViews() (refreshed []string, err error) {
	for name := range materializedViews {
		if execErr := s.DB.Exec("REFRESH MATERIALIZED VIEW " + name).Error; execErr != nil {
			log.Printf("[ERROR] refresh %s: %v", name, execErr)
			continue
		}
		refreshed = append(refreshed, name)
	}
	return refreshed, nil
}

/* =========================================================
   Statistics (pg_stat_*)
   ========================================================= */

type UnusedIndex struct {
	SchemaName string `json:"schema_name"`
	TableName  string `json:"table_name"`
	IndexName  string `json:"index_name"`
	IndexScans int64  `json:"index_scans"`
	IndexSize  string `json:"index_size"`
}

// UnusedIndexes: index non-PK yang tidak pernah dipakai scanner.
func (s *OptimizationService) UnusedIndexes() ([]UnusedIndex, error) {
	rows := []UnusedIndex{}
	err := s.DB.Raw(`
		SELECT schemaname AS schema_name,
		       relname AS table_name,
		       indexrelname AS index_name,
		       idx_scan AS index_scans,
		       pg_size_pretty(pg_relation_size(indexrelid)) AS index_size
		FROM pg_stat_user_indexes
		WHERE idx_scan = 0
		  AND indexrelname NOT LIKE '%_pkey'
		ORDER BY pg_relation_size(indexrelid) DESC`).Scan(&rows).Error
	return rows, err
}

type TableStat struct {
	TableName string `json:"table_name"`
	LiveRows  int64  `json:"live_rows"`
	DeadRows  int64  `json:"dead_rows"`
	TableSize string `json:"table_size"`
}

// TableStats: ukuran + dead tuple per tabel, indikator perlu VACUUM.
func (s *OptimizationService) TableStats() ([]TableStat, error) {
	rows := []TableStat{}
	err := s.DB.Raw(`
		SELECT relname AS table_name,
		       n_live_tup AS live_rows,
		       n_dead_tup AS dead_rows,
		       pg_size_pretty(pg_total_relation_size(relid)) AS table_size
		FROM pg_stat_user_tables
		ORDER BY pg_total_relation_size(relid) DESC`).Scan(&rows).Error
	return rows, err
}

/* =========================================================
   Query analysis
   ========================================================= */

// AnalyzeQuery menjalankan EXPLAIN (ANALYZE, FORMAT JSON). Hanya SELECT
// yang diterima, statement lain ditolak sebelum menyentuh database.
func (s *OptimizationService) AnalyzeQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return "", fmt.Errorf("hanya statement SELECT yang bisa dianalisis")
	}

	var plan string
	err := s.DB.Raw("EXPLAIN (ANALYZE, FORMAT JSON) " + trimmed).Scan(&plan).Error
	if err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}
	return plan, nil
}

/* =========================================================
   Recommendations rollup
   ========================================================= */

type Recommendation struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Recommendations merangkum temuan statistik jadi saran actionable.
func (s *OptimizationService) Recommendations() ([]Recommendation, error) {
	recs := []Recommendation{}

	unused, err := s.UnusedIndexes()
	if err != nil {
		return nil, err
	}
	for _, idx := range unused {
		recs = append(recs, Recommendation{
			Category: "index",
			Severity: "low",
			Message:  fmt.Sprintf("index %s di tabel %s tidak pernah dipakai (%s), pertimbangkan drop", idx.IndexName, idx.TableName, idx.IndexSize),
		})
	}

	tables, err := s.TableStats()
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		if t.LiveRows > 0 && t.DeadRows > t.LiveRows/5 {
			recs = append(recs, Recommendation{
				Category: "vacuum",
				Severity: "medium",
				Message:  fmt.Sprintf("tabel %s punya %d dead rows (live %d), jalankan VACUUM ANALYZE", t.TableName, t.DeadRows, t.LiveRows),
			})
		}
	}

	return recs, nil
}
