package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/courses/dto"
	whModel "eduanalytics_backend/internals/features/warehouse/model"
	helper "eduanalytics_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// List: GET /courses?page=&size=&search=&level=&department_id=&is_active=
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&whModel.CourseModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"course_name ILIKE ? OR course_code ILIKE ? OR course_description ILIKE ?",
			like, like, like,
		)
	}
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		q = q.Where("course_level = ?", level)
	}
	if deptID, err := helper.ParseUUIDQuery(c, "department_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department_id")
	} else if deptID != nil {
		q = q.Where("course_department_id = ?", *deptID)
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		q = q.Where("course_is_active = ?", raw == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	var courses []whModel.CourseModel
	if err := q.Order("course_code ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&courses).Error; err != nil {
		log.Println("[ERROR] list courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.JsonList(c, "ok", dto.FromCourseModels(courses),
		helper.BuildPaginationFromPage(total, paging.Page, paging.Size))
}

// GetByID: GET /courses/:id
func (ctrl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course whModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get course")
	}

	return helper.JsonOK(c, "ok", dto.FromCourseModel(course))
}

// Create: POST /courses
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup int64
	if err := ctrl.DB.Model(&whModel.CourseModel{}).
		Where("course_code = ?", req.CourseCode).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Course with this code already exists")
	}

	course := req.ToModel()
	if err := ctrl.DB.Create(&course).Error; err != nil {
		log.Println("[ERROR] create course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, "Course created successfully", dto.FromCourseModel(course))
}

// Update: PUT /courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course whModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
			log.Println("[ERROR] update course:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
		}
	}

	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated successfully", dto.FromCourseModel(course))
}

// Delete: DELETE /courses/:id — soft delete via flag
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	res := ctrl.DB.Model(&whModel.CourseModel{}).
		Where("course_id = ?", id).
		Update("course_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{"course_id": id})
}

// Enrollments: GET /courses/:id/enrollments
func (ctrl *CourseController) Enrollments(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var enrollments []whModel.EnrollmentFactModel
	if err := ctrl.DB.
		Where("enrollment_course_id = ?", id).
		Order("enrollment_date ASC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get enrollments")
	}

	return helper.JsonOK(c, "ok", enrollments)
}

// Performance: GET /courses/:id/performance
func (ctrl *CourseController) Performance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var facts []whModel.PerformanceFactModel
	if err := ctrl.DB.
		Where("performance_course_id = ?", id).
		Order("performance_created_at ASC").
		Find(&facts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get performance data")
	}

	return helper.JsonOK(c, "ok", facts)
}

// Prerequisites: GET /courses/:id/prerequisites
// Daftar prasyarat disimpan sebagai course_code dipisah koma (lihat model);
// resolve dengan string match, bukan join ternormalisasi.
func (ctrl *CourseController) Prerequisites(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course whModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get course")
	}

	if course.CoursePrerequisites == nil || strings.TrimSpace(*course.CoursePrerequisites) == "" {
		return helper.JsonOK(c, "ok", []dto.CourseResponse{})
	}

	codes := SplitPrerequisites(*course.CoursePrerequisites)
	var prereqs []whModel.CourseModel
	if err := ctrl.DB.Where("course_code IN ?", codes).Find(&prereqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get prerequisites")
	}

	return helper.JsonOK(c, "ok", dto.FromCourseModels(prereqs))
}

// SplitPrerequisites memecah daftar "CS101, MATH201" menjadi kode bersih.
func SplitPrerequisites(raw string) []string {
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Statistics: GET /courses/:id/statistics
func (ctrl *CourseController) Statistics(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var enroll struct {
		TotalEnrollments     int64 `json:"total_enrollments"`
		ActiveEnrollments    int64 `json:"active_enrollments"`
		CompletedEnrollments int64 `json:"completed_enrollments"`
	}
	if err := ctrl.DB.Model(&whModel.EnrollmentFactModel{}).
		Select(`COUNT(*) AS total_enrollments,
			COUNT(*) FILTER (WHERE NOT enrollment_is_dropped) AS active_enrollments,
			COUNT(*) FILTER (WHERE enrollment_is_completed) AS completed_enrollments`).
		Where("enrollment_course_id = ?", id).
		Scan(&enroll).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get statistics")
	}

	var perf struct {
		TotalGrades    int64    `json:"total_grades"`
		AvgGradePoints *float64 `json:"avg_grade_points"`
		AvgFinalScore  *float64 `json:"avg_final_score"`
		PassedStudents int64    `json:"passed_students"`
	}
	if err := ctrl.DB.Model(&whModel.PerformanceFactModel{}).
		Select(`COUNT(*) AS total_grades,
			AVG(performance_grade_points) AS avg_grade_points,
			AVG(performance_final_score) AS avg_final_score,
			COUNT(*) FILTER (WHERE performance_is_pass) AS passed_students`).
		Where("performance_course_id = ?", id).
		Scan(&perf).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get statistics")
	}

	passRate := 0.0
	if perf.TotalGrades > 0 {
		passRate = float64(perf.PassedStudents) / float64(perf.TotalGrades) * 100
	}
	avgGP, avgFS := 0.0, 0.0
	if perf.AvgGradePoints != nil {
		avgGP = *perf.AvgGradePoints
	}
	if perf.AvgFinalScore != nil {
		avgFS = *perf.AvgFinalScore
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total_enrollments":     enroll.TotalEnrollments,
		"active_enrollments":    enroll.ActiveEnrollments,
		"completed_enrollments": enroll.CompletedEnrollments,
		"total_grades":          perf.TotalGrades,
		"average_grade_points":  avgGP,
		"average_final_score":   avgFS,
		"passed_students":       perf.PassedStudents,
		"pass_rate":             passRate,
	})
}
