package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/students/dto"
	whModel "eduanalytics_backend/internals/features/warehouse/model"
	helper "eduanalytics_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// List: GET /students?page=&size=&search=&status=&major=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&whModel.StudentModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_email ILIKE ? OR student_number ILIKE ?",
			like, like, like, like,
		)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if major := strings.TrimSpace(c.Query("major")); major != "" {
		q = q.Where("student_major ILIKE ?", "%"+major+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	var students []whModel.StudentModel
	if err := q.Order("student_number ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&students).Error; err != nil {
		log.Println("[ERROR] list students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	return helper.JsonList(c, "ok", dto.FromStudentModels(students),
		helper.BuildPaginationFromPage(total, paging.Page, paging.Size))
}

// GetByID: GET /students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student whModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get student")
	}

	return helper.JsonOK(c, "ok", dto.FromStudentModel(student))
}

// Create: POST /students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Duplicate business key ditolak sebelum write
	var dup int64
	if err := ctrl.DB.Model(&whModel.StudentModel{}).
		Where("student_number = ? OR student_email = ?", req.StudentNumber, req.Email).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student with this number or email already exists")
	}

	student := req.ToModel()
	if err := ctrl.DB.Create(&student).Error; err != nil {
		log.Println("[ERROR] create student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helper.JsonCreated(c, "Student created successfully", dto.FromStudentModel(student))
}

// Update: PUT /students/:id — partial, hanya field yang dikirim
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student whModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
			log.Println("[ERROR] update student:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
		}
	}

	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated successfully", dto.FromStudentModel(student))
}

// Delete: DELETE /students/:id — soft delete via status flip, baris tetap ada
// supaya referential integrity fact table terjaga.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	res := ctrl.DB.Model(&whModel.StudentModel{}).
		Where("student_id = ?", id).
		Update("student_status", whModel.StudentStatusDropped)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted successfully", fiber.Map{"student_id": id})
}

// Performance: GET /students/:id/performance
func (ctrl *StudentController) Performance(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var facts []whModel.PerformanceFactModel
	if err := ctrl.DB.
		Where("performance_student_id = ?", id).
		Order("performance_created_at ASC").
		Find(&facts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get performance data")
	}

	return helper.JsonOK(c, "ok", facts)
}

// Courses: GET /students/:id/courses
func (ctrl *StudentController) Courses(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var enrollments []whModel.EnrollmentFactModel
	if err := ctrl.DB.
		Where("enrollment_student_id = ?", id).
		Order("enrollment_date ASC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get enrollments")
	}

	return helper.JsonOK(c, "ok", enrollments)
}

// Statistics: GET /students/:id/statistics
func (ctrl *StudentController) Statistics(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var perf struct {
		TotalCourses  int64    `json:"total_courses"`
		AvgGrade      *float64 `json:"avg_grade_points"`
		TotalCredits  *int64   `json:"total_credits"`
		PassedCourses int64    `json:"passed_courses"`
	}
	if err := ctrl.DB.Model(&whModel.PerformanceFactModel{}).
		Select(`COUNT(*) AS total_courses,
			AVG(performance_grade_points) AS avg_grade,
			SUM(performance_credits_earned) AS total_credits,
			COUNT(*) FILTER (WHERE performance_is_pass) AS passed_courses`).
		Where("performance_student_id = ?", id).
		Scan(&perf).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get statistics")
	}

	var enroll struct {
		TotalEnrollments int64 `json:"total_enrollments"`
		DroppedCourses   int64 `json:"dropped_courses"`
	}
	if err := ctrl.DB.Model(&whModel.EnrollmentFactModel{}).
		Select(`COUNT(*) AS total_enrollments,
			COUNT(*) FILTER (WHERE enrollment_is_dropped) AS dropped_courses`).
		Where("enrollment_student_id = ?", id).
		Scan(&enroll).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to get statistics")
	}

	passRate := 0.0
	if perf.TotalCourses > 0 {
		passRate = float64(perf.PassedCourses) / float64(perf.TotalCourses) * 100
	}
	avgGrade := 0.0
	if perf.AvgGrade != nil {
		avgGrade = *perf.AvgGrade
	}
	var totalCredits int64
	if perf.TotalCredits != nil {
		totalCredits = *perf.TotalCredits
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total_courses":        perf.TotalCourses,
		"average_grade_points": avgGrade,
		"total_credits":        totalCredits,
		"passed_courses":       perf.PassedCourses,
		"total_enrollments":    enroll.TotalEnrollments,
		"dropped_courses":      enroll.DroppedCourses,
		"pass_rate":            passRate,
	})
}
