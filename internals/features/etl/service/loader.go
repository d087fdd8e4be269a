package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	whModel "eduanalytics_backend/internals/features/warehouse/model"
	whService "eduanalytics_backend/internals/features/warehouse/service"
)

// JobKind: jenis import yang didukung pipeline.
type JobKind string

const (
	JobKindStudent     JobKind = "student"
	JobKindCourse      JobKind = "course"
	JobKindPerformance JobKind = "performance"
)

// Loader menerjemahkan satu baris file ke satu insert warehouse.
// LoadRow mengembalikan error per baris; baris gagal cuma dihitung,
// tidak menghentikan job.
type Loader interface {
	Kind() JobKind
	RequiredColumns() []string
	OptionalColumns() []string
	LoadRow(db *gorm.DB, row map[string]string) error
}

// LoaderFor: registry statis, kind di luar daftar ditolak sinkron.
func LoaderFor(kind string) (Loader, error) {
	switch JobKind(strings.ToLower(strings.TrimSpace(kind))) {
	case JobKindStudent:
		return studentLoader{}, nil
	case JobKindCourse:
		return courseLoader{}, nil
	case JobKindPerformance:
		return performanceLoader{}, nil
	default:
		return nil, fmt.Errorf("job kind tidak didukung: %s", kind)
	}
}

func SupportedKinds() []JobKind {
	return []JobKind{JobKindStudent, JobKindCourse, JobKindPerformance}
}

/* =========================================================
   Field helpers
   ========================================================= */

func requireField(row map[string]string, key string) (string, error) {
	v := strings.TrimSpace(row[key])
	if v == "" {
		return "", fmt.Errorf("kolom %s kosong", key)
	}
	return v, nil
}

func parseDateField(row map[string]string, key string) (time.Time, error) {
	v, err := requireField(row, key)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("kolom %s bukan tanggal YYYY-MM-DD: %s", key, v)
	}
	return d, nil
}

func parseFloatField(row map[string]string, key string) (float64, error) {
	v, err := requireField(row, key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("kolom %s bukan angka: %s", key, v)
	}
	return f, nil
}

func parseIntField(row map[string]string, key string) (int, error) {
	v, err := requireField(row, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("kolom %s bukan bilangan bulat: %s", key, v)
	}
	return n, nil
}

func optionalField(row map[string]string, key string) *string {
	v := strings.TrimSpace(row[key])
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   Student loader
   ========================================================= */

type studentLoader struct{}

func (studentLoader) Kind() JobKind { return JobKindStudent }

func (studentLoader) RequiredColumns() []string {
	return []string{"student_number", "first_name", "last_name", "email", "gender", "date_of_birth", "enrollment_date"}
}

func (studentLoader) OptionalColumns() []string {
	return []string{"major", "minor", "ethnicity", "status", "graduation_date"}
}

func (studentLoader) LoadRow(db *gorm.DB, row map[string]string) error {
	number, err := requireField(row, "student_number")
	if err != nil {
		return err
	}
	firstName, err := requireField(row, "first_name")
	if err != nil {
		return err
	}
	lastName, err := requireField(row, "last_name")
	if err != nil {
		return err
	}
	email, err := requireField(row, "email")
	if err != nil {
		return err
	}
	gender, err := requireField(row, "gender")
	if err != nil {
		return err
	}
	dob, err := parseDateField(row, "date_of_birth")
	if err != nil {
		return err
	}
	enrolled, err := parseDateField(row, "enrollment_date")
	if err != nil {
		return err
	}

	status := whModel.StudentStatusActive
	if raw := strings.TrimSpace(row["status"]); raw != "" {
		switch whModel.StudentStatus(raw) {
		case whModel.StudentStatusActive, whModel.StudentStatusGraduated,
			whModel.StudentStatusDropped, whModel.StudentStatusSuspended:
			status = whModel.StudentStatus(raw)
		default:
			return fmt.Errorf("status tidak dikenal: %s", raw)
		}
	}

	m := whModel.StudentModel{
		StudentNumber:         number,
		StudentFirstName:      firstName,
		StudentLastName:       lastName,
		StudentEmail:          email,
		StudentGender:         gender,
		StudentEthnicity:      optionalField(row, "ethnicity"),
		StudentDateOfBirth:    dob,
		StudentEnrollmentDate: enrolled,
		StudentStatus:         status,
		StudentMajor:          optionalField(row, "major"),
		StudentMinor:          optionalField(row, "minor"),
	}
	if raw := strings.TrimSpace(row["graduation_date"]); raw != "" {
		grad, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("kolom graduation_date bukan tanggal YYYY-MM-DD: %s", raw)
		}
		m.StudentGraduationDate = &grad
	}
	return db.Create(&m).Error
}

/* =========================================================
   Course loader
   ========================================================= */

type courseLoader struct{}

func (courseLoader) Kind() JobKind { return JobKindCourse }

func (courseLoader) RequiredColumns() []string {
	return []string{"course_code", "course_name", "credits", "level", "department_code"}
}

func (courseLoader) OptionalColumns() []string {
	return []string{"description", "prerequisites"}
}

func (courseLoader) LoadRow(db *gorm.DB, row map[string]string) error {
	code, err := requireField(row, "course_code")
	if err != nil {
		return err
	}
	name, err := requireField(row, "course_name")
	if err != nil {
		return err
	}
	credits, err := parseIntField(row, "credits")
	if err != nil {
		return err
	}
	if credits < 1 || credits > 6 {
		return fmt.Errorf("credits di luar rentang 1-6: %d", credits)
	}
	rawLevel, err := requireField(row, "level")
	if err != nil {
		return err
	}
	level := whModel.CourseLevel(strings.ToLower(rawLevel))
	switch level {
	case whModel.CourseLevelUndergraduate, whModel.CourseLevelGraduate, whModel.CourseLevelDoctorate:
	default:
		return fmt.Errorf("level tidak dikenal: %s", rawLevel)
	}
	deptCode, err := requireField(row, "department_code")
	if err != nil {
		return err
	}

	var dept whModel.DepartmentModel
	if err := db.Where("department_code = ?", deptCode).First(&dept).Error; err != nil {
		return fmt.Errorf("department %s tidak ditemukan", deptCode)
	}

	m := whModel.CourseModel{
		CourseCode:          code,
		CourseName:          name,
		CourseDescription:   optionalField(row, "description"),
		CourseCredits:       credits,
		CourseLevel:         level,
		CourseDepartmentID:  dept.DepartmentID,
		CoursePrerequisites: optionalField(row, "prerequisites"),
		CourseIsActive:      true,
	}
	return db.Create(&m).Error
}

/* =========================================================
   Performance loader
   ========================================================= */

type performanceLoader struct{}

func (performanceLoader) Kind() JobKind { return JobKindPerformance }

func (performanceLoader) RequiredColumns() []string {
	return []string{"student_number", "course_code", "instructor_email", "date", "grade_points", "assignment_score", "exam_score", "credits_earned"}
}

func (performanceLoader) OptionalColumns() []string {
	return []string{"attendance_percentage", "letter_grade"}
}

func (performanceLoader) LoadRow(db *gorm.DB, row map[string]string) error {
	studentNumber, err := requireField(row, "student_number")
	if err != nil {
		return err
	}
	courseCode, err := requireField(row, "course_code")
	if err != nil {
		return err
	}
	instructorEmail, err := requireField(row, "instructor_email")
	if err != nil {
		return err
	}
	date, err := parseDateField(row, "date")
	if err != nil {
		return err
	}
	gradePoints, err := parseFloatField(row, "grade_points")
	if err != nil {
		return err
	}
	assignment, err := parseFloatField(row, "assignment_score")
	if err != nil {
		return err
	}
	exam, err := parseFloatField(row, "exam_score")
	if err != nil {
		return err
	}
	credits, err := parseIntField(row, "credits_earned")
	if err != nil {
		return err
	}

	var student whModel.StudentModel
	if err := db.Where("student_number = ?", studentNumber).First(&student).Error; err != nil {
		return fmt.Errorf("student %s tidak ditemukan", studentNumber)
	}
	var course whModel.CourseModel
	if err := db.Where("course_code = ?", courseCode).First(&course).Error; err != nil {
		return fmt.Errorf("course %s tidak ditemukan", courseCode)
	}
	var instructor whModel.InstructorModel
	if err := db.Where("instructor_email = ?", instructorEmail).First(&instructor).Error; err != nil {
		return fmt.Errorf("instructor %s tidak ditemukan", instructorEmail)
	}

	// Dim time diisi on demand, aman untuk tanggal di luar range yang
	// sudah di-generate
	timeID, err := whService.NewTimeDimensionService(db).EnsureDate(date)
	if err != nil {
		return fmt.Errorf("resolve time dimension: %w", err)
	}

	m := whModel.PerformanceFactModel{
		PerformanceStudentID:       student.StudentID,
		PerformanceCourseID:        course.CourseID,
		PerformanceInstructorID:    instructor.InstructorID,
		PerformanceTimeID:          timeID,
		PerformanceGradePoints:     gradePoints,
		PerformanceCreditsEarned:   credits,
		PerformanceAssignmentScore: assignment,
		PerformanceExamScore:       exam,
	}
	if raw := strings.TrimSpace(row["letter_grade"]); raw != "" {
		m.PerformanceLetterGrade = raw
	}
	if raw := strings.TrimSpace(row["attendance_percentage"]); raw != "" {
		att, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("kolom attendance_percentage bukan angka: %s", raw)
		}
		m.PerformanceAttendancePercentage = &att
	}
	m.RecomputeMeasures()
	return db.Create(&m).Error
}
