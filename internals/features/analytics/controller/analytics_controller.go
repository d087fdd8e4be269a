package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/analytics/dto"
	"eduanalytics_backend/internals/features/analytics/service"
	helper "eduanalytics_backend/internals/helpers"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Service: service.NewAnalyticsService(db)}
}

// filterFromQuery: baca predikat opsional dari query string.
func filterFromQuery(c *fiber.Ctx) (dto.AnalyticsFilter, error) {
	var f dto.AnalyticsFilter

	sid, err := helper.ParseUUIDQuery(c, "student_id")
	if err != nil {
		return f, err
	}
	cid, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return f, err
	}
	did, err := helper.ParseUUIDQuery(c, "department_id")
	if err != nil {
		return f, err
	}
	start, err := helper.ParseDateQuery(c, "start_date")
	if err != nil {
		return f, err
	}
	end, err := helper.ParseDateQuery(c, "end_date")
	if err != nil {
		return f, err
	}

	f.StudentID, f.CourseID, f.DepartmentID = sid, cid, did
	f.StartDate, f.EndDate = start, end
	if lvl := c.Query("level"); lvl != "" {
		f.Level = &lvl
	}
	return f, nil
}

// GET /api/v1/analytics/performance
func (ctl *AnalyticsController) Performance(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	metrics, err := ctl.Service.PerformanceMetrics(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung performance metrics")
	}
	return helper.JsonOK(c, "Performance metrics berhasil diambil", metrics)
}

// GET /api/v1/analytics/enrollment
func (ctl *AnalyticsController) Enrollment(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stats, err := ctl.Service.EnrollmentStats(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung enrollment stats")
	}
	return helper.JsonOK(c, "Enrollment stats berhasil diambil", stats)
}

// GET /api/v1/analytics/courses
func (ctl *AnalyticsController) Courses(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stats, err := ctl.Service.CourseStats(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung course stats")
	}
	return helper.JsonOK(c, "Course stats berhasil diambil", stats)
}

// GET /api/v1/analytics/departments
func (ctl *AnalyticsController) Departments(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	stats, err := ctl.Service.DepartmentStats(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung department stats")
	}
	return helper.JsonOK(c, "Department stats berhasil diambil", stats)
}

// GET /api/v1/analytics/dashboard
func (ctl *AnalyticsController) Dashboard(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	data, err := ctl.Service.Dashboard(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun dashboard")
	}
	return helper.JsonOK(c, "Dashboard berhasil diambil", data)
}

// GET /api/v1/analytics/kpis
func (ctl *AnalyticsController) KPIs(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	kpis, err := ctl.Service.InstitutionalKPIs(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung KPI")
	}
	return helper.JsonOK(c, "KPI institusional berhasil diambil", kpis)
}

// GET /api/v1/analytics/trends/performance?period=monthly
// Period tidak dikenal jatuh ke monthly.
func (ctl *AnalyticsController) PerformanceTrends(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := service.ParsePeriod(c.Query("period"))
	series, err := ctl.Service.PerformanceTrends(p, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung performance trends")
	}
	return helper.JsonOK(c, "Performance trends berhasil diambil", series)
}

// GET /api/v1/analytics/trends/enrollment?period=monthly
func (ctl *AnalyticsController) EnrollmentTrends(c *fiber.Ctx) error {
	f, err := filterFromQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	p := service.ParsePeriod(c.Query("period"))
	series, err := ctl.Service.EnrollmentTrends(p, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung enrollment trends")
	}
	return helper.JsonOK(c, "Enrollment trends berhasil diambil", series)
}
