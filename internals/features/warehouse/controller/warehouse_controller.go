package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/warehouse/dto"
	"eduanalytics_backend/internals/features/warehouse/model"
	"eduanalytics_backend/internals/features/warehouse/service"
	helper "eduanalytics_backend/internals/helpers"
)

type WarehouseController struct {
	DB   *gorm.DB
	Time *service.TimeDimensionService
}

func NewWarehouseController(db *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: db, Time: service.NewTimeDimensionService(db)}
}

// POST /api/v1/warehouse/time-dimension
// Generate baris dim_time untuk range [start,end], idempotent per tanggal.
func (ctl *WarehouseController) GenerateTimeRange(c *fiber.Ctx) error {
	var req dto.GenerateTimeRangeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_date sebelum start_date")
	}

	inserted, err := ctl.Time.GenerateRange(start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate time dimension")
	}
	return helper.JsonCreated(c, "Time dimension berhasil digenerate", fiber.Map{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"inserted":   inserted,
	})
}

// GET /api/v1/warehouse/schools
func (ctl *WarehouseController) ListSchools(c *fiber.Ctx) error {
	var rows []model.SchoolModel
	if err := ctl.DB.Order("school_code ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil schools")
	}
	return helper.JsonOK(c, "Schools berhasil diambil", rows)
}

// POST /api/v1/warehouse/schools
func (ctl *WarehouseController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.SchoolModel{}).Where("school_code = ?", req.Code).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "School code sudah terdaftar")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan school")
	}
	return helper.JsonCreated(c, "School berhasil disimpan", m)
}

// GET /api/v1/warehouse/departments
func (ctl *WarehouseController) ListDepartments(c *fiber.Ctx) error {
	var rows []model.DepartmentModel
	if err := ctl.DB.Order("department_code ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil departments")
	}
	return helper.JsonOK(c, "Departments berhasil diambil", rows)
}

// POST /api/v1/warehouse/departments
func (ctl *WarehouseController) CreateDepartment(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.DepartmentModel{}).Where("department_code = ?", req.Code).Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Department code sudah terdaftar")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan department")
	}
	return helper.JsonCreated(c, "Department berhasil disimpan", m)
}

// GET /api/v1/warehouse/instructors
func (ctl *WarehouseController) ListInstructors(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.InstructorModel{})
	if v := c.Query("department_id"); v != "" {
		q = q.Where("instructor_department_id = ?", v)
	}
	var rows []model.InstructorModel
	if err := q.Order("instructor_number ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil instructors")
	}
	return helper.JsonOK(c, "Instructors berhasil diambil", rows)
}

// POST /api/v1/warehouse/instructors
func (ctl *WarehouseController) CreateInstructor(c *fiber.Ctx) error {
	var req dto.CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctl.DB.Model(&model.InstructorModel{}).
		Where("instructor_number = ? OR instructor_email = ?", req.Number, req.Email).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Instructor number/email sudah terdaftar")
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "hire_date bukan tanggal YYYY-MM-DD")
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan instructor")
	}
	return helper.JsonCreated(c, "Instructor berhasil disimpan", m)
}
