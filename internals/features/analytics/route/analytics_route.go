package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduanalytics_backend/internals/features/analytics/controller"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAnalyticsController(db)

	analytics := api.Group("/analytics")
	analytics.Get("/performance", ctl.Performance)
	analytics.Get("/enrollment", ctl.Enrollment)
	analytics.Get("/courses", ctl.Courses)
	analytics.Get("/departments", ctl.Departments)
	analytics.Get("/dashboard", ctl.Dashboard)
	analytics.Get("/kpis", ctl.KPIs)
	analytics.Get("/trends/performance", ctl.PerformanceTrends)
	analytics.Get("/trends/enrollment", ctl.EnrollmentTrends)
}
