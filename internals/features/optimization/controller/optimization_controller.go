package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/optimization/service"
	helper "eduanalytics_backend/internals/helpers"
)

type OptimizationController struct {
	Service *service.OptimizationService
}

func NewOptimizationController(db *gorm.DB) *OptimizationController {
	return &OptimizationController{Service: service.NewOptimizationService(db)}
}

// POST /api/v1/optimization/indexes
func (ctl *OptimizationController) CreateIndexes(c *fiber.Ctx) error {
	created, err := ctl.Service.CreateIndexes()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat index")
	}
	return helper.JsonOK(c, "Index berhasil dibuat", fiber.Map{"created": created})
}

// POST /api/v1/optimization/materialized-views
func (ctl *OptimizationController) CreateMaterializedViews(c *fiber.Ctx) error {
	created, err := ctl.Service.CreateMaterializedViews()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat materialized views")
	}
	return helper.JsonOK(c, "Materialized views berhasil dibuat", fiber.Map{"created": created})
}

// POST /api/v1/optimization/materialized-views/refresh
func (ctl *OptimizationController) RefreshMaterializedViews(c *fiber.Ctx) error {
	refreshed, err := ctl.Service.RefreshMaterializedViews()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merefresh materialized views")
	}
	return helper.JsonOK(c, "Materialized views berhasil direfresh", fiber.Map{"refreshed": refreshed})
}

// GET /api/v1/optimization/unused-indexes
func (ctl *OptimizationController) UnusedIndexes(c *fiber.Ctx) error {
	rows, err := ctl.Service.UnusedIndexes()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca statistik index")
	}
	return helper.JsonOK(c, "Unused indexes berhasil diambil", rows)
}

// GET /api/v1/optimization/table-stats
func (ctl *OptimizationController) TableStats(c *fiber.Ctx) error {
	rows, err := ctl.Service.TableStats()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca statistik tabel")
	}
	return helper.JsonOK(c, "Table stats berhasil diambil", rows)
}

// POST /api/v1/optimization/analyze-query
func (ctl *OptimizationController) AnalyzeQuery(c *fiber.Ctx) error {
	var req struct {
		Query string `json:"query" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	plan, err := ctl.Service.AnalyzeQuery(req.Query)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "Query berhasil dianalisis", fiber.Map{"plan": plan})
}

// GET /api/v1/optimization/recommendations
func (ctl *OptimizationController) Recommendations(c *fiber.Ctx) error {
	recs, err := ctl.Service.Recommendations()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun rekomendasi")
	}
	return helper.JsonOK(c, "Rekomendasi berhasil disusun", recs)
}
