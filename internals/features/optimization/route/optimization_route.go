package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/optimization/controller"
)

func OptimizationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewOptimizationController(db)

	opt := api.Group("/optimization")
	opt.Post("/indexes", ctl.CreateIndexes)
	opt.Post("/materialized-views", ctl.CreateMaterializedViews)
	opt.Post("/materialized-views/refresh", ctl.RefreshMaterializedViews)
	opt.Get("/unused-indexes", ctl.UnusedIndexes)
	opt.Get("/table-stats", ctl.TableStats)
	opt.Post("/analyze-query", ctl.AnalyzeQuery)
	opt.Get("/recommendations", ctl.Recommendations)
}
