package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "eduanalytics_backend/internals/features/analytics/route"
	courseRoute "eduanalytics_backend/internals/features/courses/route"
	etlRoute "eduanalytics_backend/internals/features/etl/route"
	feedbackRoute "eduanalytics_backend/internals/features/feedback/route"
	optimizationRoute "eduanalytics_backend/internals/features/optimization/route"
	studentRoute "eduanalytics_backend/internals/features/students/route"
	warehouseRoute "eduanalytics_backend/internals/features/warehouse/route"
)

// SetupRoutes mendaftarkan semua route fitur di bawah /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	studentRoute.StudentRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	analyticsRoute.AnalyticsRoutes(api, db)
	feedbackRoute.FeedbackRoutes(api, db)
	etlRoute.ETLRoutes(api, db)
	optimizationRoute.OptimizationRoutes(api, db)
	warehouseRoute.WarehouseRoutes(api, db)

	log.Println("[INFO] Semua route terdaftar di /api/v1")
}
